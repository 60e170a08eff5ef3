package core

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"pgregory.net/rapid"
)

// Every created project is retrievable with exactly the name and
// description it was created with, and IDs never collide.
func TestProperty_CreateThenGet(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := rapid.SliceOfN(rapid.String(), 1, 20).Draw(rt, "names")
		pm := NewProjectManager(nil)

		ids := make(map[uuid.UUID]string, len(names))
		for i, name := range names {
			desc := rapid.String().Draw(rt, "desc")
			id := pm.CreateProject(name, desc)
			if _, dup := ids[id]; dup {
				rt.Fatalf("duplicate id %s at %d", id, i)
			}
			ids[id] = name

			p, err := pm.GetProject(id)
			if err != nil {
				rt.Fatalf("GetProject(%s): %v", id, err)
			}
			if p.Name != name || p.Description != desc {
				rt.Fatalf("got (%q, %q), want (%q, %q)", p.Name, p.Description, name, desc)
			}
		}

		listed := pm.ListProjects()
		if len(listed) != len(names) {
			rt.Fatalf("ListProjects() = %d, want %d", len(listed), len(names))
		}
		if !sort.SliceIsSorted(listed, func(i, j int) bool { return listed[i].Name < listed[j].Name }) {
			rt.Fatal("ListProjects() not sorted by name")
		}
	})
}

// An update changes exactly the fields present in the patch.
func TestProperty_TaskPatchLaw(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pm := NewProjectManager(nil)
		pid := pm.CreateProject("p", "")
		origName := rapid.String().Draw(rt, "origName")
		origDesc := rapid.String().Draw(rt, "origDesc")
		tid, err := pm.CreateTask(pid, origName, origDesc)
		if err != nil {
			rt.Fatalf("CreateTask: %v", err)
		}

		var patch TaskPatch
		wantName, wantDesc := origName, origDesc
		if rapid.Bool().Draw(rt, "setName") {
			v := rapid.String().Draw(rt, "name")
			patch.Name = &v
			wantName = v
		}
		if rapid.Bool().Draw(rt, "setDesc") {
			v := rapid.String().Draw(rt, "desc")
			patch.Description = &v
			wantDesc = v
		}

		if err := pm.UpdateTask(pid, tid, patch); err != nil {
			rt.Fatalf("UpdateTask: %v", err)
		}
		tasks, _ := pm.ListTasks(pid)
		if len(tasks) != 1 {
			rt.Fatalf("ListTasks() = %d, want 1", len(tasks))
		}
		got := tasks[0]
		if got.ID != tid || got.Name != wantName || got.Description != wantDesc {
			rt.Fatalf("got %+v, want name %q desc %q", got, wantName, wantDesc)
		}
	})
}

// Destroying a project removes it and only it.
func TestProperty_DestroyRemovesOnlyTarget(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(rt, "n")
		pm := NewProjectManager(nil)
		var ids []uuid.UUID
		for i := 0; i < n; i++ {
			ids = append(ids, pm.CreateProject(rapid.StringMatching(`[a-z]{1,8}`).Draw(rt, "name"), ""))
		}
		victim := ids[rapid.IntRange(0, n-1).Draw(rt, "victim")]

		if err := pm.DestroyProject(victim); err != nil {
			rt.Fatalf("DestroyProject: %v", err)
		}
		for _, id := range ids {
			_, err := pm.GetProject(id)
			if id == victim && err == nil {
				rt.Fatalf("destroyed project %s still present", id)
			}
			if id != victim && err != nil {
				rt.Fatalf("project %s lost: %v", id, err)
			}
		}
	})
}
