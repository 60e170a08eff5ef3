package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/valter-silva-au/taskmanager/internal/core"
	"github.com/valter-silva-au/taskmanager/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	// JSONFileName holds the project collection in JSON persistence mode.
	JSONFileName = "projects.json"
	// YAMLFileName holds the project collection in YAML persistence mode.
	YAMLFileName = "projects.yaml"
)

// ProjectStore loads and saves the whole project collection as one file.
type ProjectStore interface {
	Load() (*models.ProjectData, error)
	Save(data *models.ProjectData) error
	Path() string
}

// codec converts the on-disk projects document to and from bytes.
type codec struct {
	format    string
	marshal   func(projects map[uuid.UUID]*models.Project) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var jsonCodec = codec{
	format: "JSON",
	marshal: func(projects map[uuid.UUID]*models.Project) ([]byte, error) {
		// encoding/json sorts map keys through their text form.
		data, err := json.MarshalIndent(projects, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	},
	unmarshal: json.Unmarshal,
}

var yamlCodec = codec{
	format:    "YAML",
	marshal:   marshalYAML,
	unmarshal: yaml.Unmarshal,
}

// yamlProject mirrors models.Project with string keys: yaml.v3 only sorts
// keys it can compare, and uuid.UUID is a byte array.
type yamlProject struct {
	ID          uuid.UUID              `yaml:"id"`
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Tasks       map[string]models.Task `yaml:"tasks"`
}

func marshalYAML(projects map[uuid.UUID]*models.Project) ([]byte, error) {
	doc := make(map[string]yamlProject, len(projects))
	for id, p := range projects {
		tasks := make(map[string]models.Task, len(p.Tasks))
		for tid, t := range p.Tasks {
			tasks[tid.String()] = t
		}
		doc[id.String()] = yamlProject{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Tasks:       tasks,
		}
	}
	return yaml.Marshal(doc)
}

type fileProjectStore struct {
	basePath string
	fileName string
	codec    codec
}

// NewProjectStore returns the store for the given persistence mode, rooted
// at basePath.
func NewProjectStore(basePath string, mode models.PersistenceMode) (ProjectStore, error) {
	switch mode {
	case models.PersistenceJSON:
		return NewJSONProjectStore(basePath), nil
	case models.PersistenceYAML:
		return NewYAMLProjectStore(basePath), nil
	default:
		return nil, fmt.Errorf("unsupported persistence mode %q", mode)
	}
}

// NewJSONProjectStore creates a ProjectStore backed by projects.json in
// basePath. The file is a JSON object mapping project ID to project.
func NewJSONProjectStore(basePath string) ProjectStore {
	return &fileProjectStore{basePath: basePath, fileName: JSONFileName, codec: jsonCodec}
}

// NewYAMLProjectStore creates a ProjectStore backed by projects.yaml in
// basePath, with the same document shape as the JSON store.
func NewYAMLProjectStore(basePath string) ProjectStore {
	return &fileProjectStore{basePath: basePath, fileName: YAMLFileName, codec: yamlCodec}
}

func (s *fileProjectStore) Path() string {
	return filepath.Join(s.basePath, s.fileName)
}

// Load reads the collection. A missing file is an empty collection.
func (s *fileProjectStore) Load() (*models.ProjectData, error) {
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewProjectData(), nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", core.ErrPersistenceFailure, s.fileName, err)
	}

	var projects map[uuid.UUID]*models.Project
	if err := s.codec.unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("%w: parsing %s %s: %v", core.ErrCorruptStore, s.codec.format, s.fileName, err)
	}

	data := models.NewProjectData()
	for id, p := range projects {
		if p == nil {
			return nil, fmt.Errorf("%w: %s: project %s is null", core.ErrCorruptStore, s.fileName, id)
		}
		if p.Tasks == nil {
			p.Tasks = make(map[uuid.UUID]models.Task)
		}
		data.Projects[id] = p
	}
	return data, nil
}

// Save serialises the full collection and replaces the file atomically: the
// bytes go to a temp file in the same directory which is then renamed over
// the target.
func (s *fileProjectStore) Save(data *models.ProjectData) error {
	projects := map[uuid.UUID]*models.Project{}
	if data != nil && data.Projects != nil {
		projects = data.Projects
	}

	encoded, err := s.codec.marshal(projects)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", core.ErrPersistenceFailure, s.fileName, err)
	}
	if err := writeFileAtomic(s.Path(), encoded, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", core.ErrPersistenceFailure, s.fileName, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	committed = true
	return nil
}
