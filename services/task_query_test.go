package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Juggernaut7/Task-Tidy/models"
)

func TestListTasks_OwnerScoping(t *testing.T) {
	db := testDB(t)
	mkTask(t, db, "alice", nil)
	mkTask(t, db, "alice", nil)
	mkTask(t, db, "bob", nil)

	tasks, pg, err := ListTasks(db, "alice", TaskFilter{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 || pg.Total != 2 {
		t.Errorf("got %d tasks (total %d), want 2", len(tasks), pg.Total)
	}
	for _, task := range tasks {
		if task.CreatedBy != "alice" {
			t.Errorf("leaked task owned by %q", task.CreatedBy)
		}
	}
}

func TestListTasks_StatusPriorityCategory(t *testing.T) {
	db := testDB(t)
	mkTask(t, db, "alice", func(task *models.Task) {
		task.Status = models.StatusInProgress
		task.Priority = models.PriorityUrgent
		task.Category = "Work"
	})
	mkTask(t, db, "alice", func(task *models.Task) {
		task.Status = models.StatusTodo
		task.Priority = models.PriorityLow
		task.Category = "Home"
	})

	tasks, _, err := ListTasks(db, "alice", TaskFilter{
		Status:   models.StatusInProgress,
		Priority: models.PriorityUrgent,
		Category: "Work",
	})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Category != "Work" {
		t.Errorf("Category = %q", tasks[0].Category)
	}
}

func TestListTasks_DueDateWindow(t *testing.T) {
	db := testDB(t)

	set := func(ts time.Time) func(*models.Task) {
		return func(task *models.Task) { task.DueDate = &ts }
	}
	// inside [2025-03-10, 2025-03-11)
	early := mkTask(t, db, "alice", set(utcDate(2025, 3, 10)))
	late := mkTask(t, db, "alice", set(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)))
	// outside
	mkTask(t, db, "alice", set(utcDate(2025, 3, 11)))
	mkTask(t, db, "alice", set(time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC)))
	mkTask(t, db, "alice", nil) // no due date

	tasks, _, err := ListTasks(db, "alice", TaskFilter{DueDate: "2025-03-10"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	got := map[string]bool{tasks[0].ID: true, tasks[1].ID: true}
	if !got[early.ID] || !got[late.ID] {
		t.Errorf("wrong tasks matched the window: %v", got)
	}
}

func TestListTasks_InvalidDueDate(t *testing.T) {
	db := testDB(t)

	_, _, err := ListTasks(db, "alice", TaskFilter{DueDate: "03/10/2025"})
	var ferr *FilterError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want FilterError", err)
	}
}

func TestListTasks_TagsAnyMatch(t *testing.T) {
	db := testDB(t)
	a := mkTask(t, db, "alice", func(task *models.Task) {
		task.Tags = models.StringList{"urgent", "work"}
	})
	b := mkTask(t, db, "alice", func(task *models.Task) {
		task.Tags = models.StringList{"home"}
	})
	mkTask(t, db, "alice", func(task *models.Task) {
		task.Tags = models.StringList{"errand"}
	})

	tasks, _, err := ListTasks(db, "alice", TaskFilter{Tags: "work, home"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	got := map[string]bool{tasks[0].ID: true, tasks[1].ID: true}
	if !got[a.ID] || !got[b.ID] {
		t.Errorf("tag intersection matched wrong tasks")
	}
}

func TestListTasks_SearchCaseInsensitive(t *testing.T) {
	db := testDB(t)
	inTitle := mkTask(t, db, "alice", func(task *models.Task) {
		task.Title = "Quarterly REPORT draft"
	})
	inDesc := mkTask(t, db, "alice", func(task *models.Task) {
		task.Title = "misc"
		task.Description = "see the report from last week"
	})
	mkTask(t, db, "alice", func(task *models.Task) {
		task.Title = "groceries"
	})

	tasks, _, err := ListTasks(db, "alice", TaskFilter{Search: "Report"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	got := map[string]bool{tasks[0].ID: true, tasks[1].ID: true}
	if !got[inTitle.ID] || !got[inDesc.ID] {
		t.Errorf("search matched wrong tasks")
	}
}

func TestListTasks_SortAscending(t *testing.T) {
	db := testDB(t)
	for _, title := range []string{"banana", "apple", "cherry"} {
		mkTask(t, db, "alice", func(task *models.Task) { task.Title = title })
	}

	tasks, _, err := ListTasks(db, "alice", TaskFilter{SortBy: "title", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	want := []string{"apple", "banana", "cherry"}
	for i, w := range want {
		if tasks[i].Title != w {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, w)
		}
	}
}

func TestListTasks_UnknownSortFallsBack(t *testing.T) {
	db := testDB(t)
	mkTask(t, db, "alice", nil)

	// must not error or inject the raw value into the ORDER BY
	_, _, err := ListTasks(db, "alice", TaskFilter{SortBy: "password; DROP TABLE users"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
}

func TestListTasks_PaginationUnion(t *testing.T) {
	db := testDB(t)
	total := 7
	for i := 0; i < total; i++ {
		mkTask(t, db, "alice", func(task *models.Task) {
			task.CreatedAt = utcDate(2025, 1, 1).Add(time.Duration(i) * time.Hour)
		})
	}

	seen := map[string]bool{}
	limit := 3
	var pages int
	for page := 1; ; page++ {
		tasks, pg, err := ListTasks(db, "alice", TaskFilter{Page: page, Limit: limit})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if len(tasks) > limit {
			t.Fatalf("page %d returned %d > limit %d", page, len(tasks), limit)
		}
		for _, task := range tasks {
			if seen[task.ID] {
				t.Errorf("task %s appears on more than one page", task.ID)
			}
			seen[task.ID] = true
		}
		pages = pg.Pages
		if page >= pg.Pages {
			break
		}
	}

	if len(seen) != total {
		t.Errorf("union of pages has %d tasks, want %d", len(seen), total)
	}
	if pages != 3 { // ceil(7/3)
		t.Errorf("pages = %d, want 3", pages)
	}
}

func TestListTasks_DefaultWindow(t *testing.T) {
	db := testDB(t)
	mkTask(t, db, "alice", nil)

	_, pg, err := ListTasks(db, "alice", TaskFilter{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if pg.Page != 1 || pg.Limit != 20 {
		t.Errorf("default window = page %d limit %d, want 1/20", pg.Page, pg.Limit)
	}

	_, pg, err = ListTasks(db, "alice", TaskFilter{Limit: 1000})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if pg.Limit != maxLimit {
		t.Errorf("limit = %d, want cap %d", pg.Limit, maxLimit)
	}
}
