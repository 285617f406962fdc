package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type courseRepoFactory func(t *testing.T, seed ...domain.Course) RecordRepo[domain.Course]

func courseBackends() map[string]courseRepoFactory {
	return map[string]courseRepoFactory{
		"memory": func(t *testing.T, seed ...domain.Course) RecordRepo[domain.Course] {
			return NewMemoryRecordRepo(seed...)
		},
		"sqlite": func(t *testing.T, seed ...domain.Course) RecordRepo[domain.Course] {
			repo := NewSQLiteRecordRepo[domain.Course](testutil.NewTestDB(t))
			require.NoError(t, repo.Seed(context.Background(), seed))
			return repo
		},
	}
}

func seededCourses() []domain.Course {
	return []domain.Course{
		testutil.NewTestCourse("Advanced React Patterns").WithID(1),
		testutil.NewTestCourse("Docker and Kubernetes Fundamentals").WithID(2),
	}
}

func names(courses []domain.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.Name
	}
	return out
}

func ids(courses []domain.Course) []int {
	out := make([]int, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func TestRecordRepo_AddToEmptyStartsAtOne(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			first, err := repo.Add(ctx, testutil.NewTestCourse("Go in Action"))
			require.NoError(t, err)
			assert.Equal(t, 1, first.ID)

			second, err := repo.Add(ctx, testutil.NewTestCourse("Distributed Systems"))
			require.NoError(t, err)
			assert.Equal(t, 2, second.ID)
		})
	}
}

func TestRecordRepo_AddAssignsNextIDAndAppends(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			added, err := repo.Add(ctx, testutil.NewTestCourse("Go Concurrency", testutil.WithCourseStatus(domain.CourseInProgress)))
			require.NoError(t, err)
			assert.Equal(t, 3, added.ID)
			assert.Equal(t, "In Progress", added.Status.Label())

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, ids(list))
			assert.Equal(t, "Go Concurrency", list[2].Name)
		})
	}
}

func TestRecordRepo_AddIgnoresIncomingID(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			added, err := repo.Add(ctx, testutil.NewTestCourse("Rust").WithID(99))
			require.NoError(t, err)
			assert.Equal(t, 3, added.ID)
		})
	}
}

func TestRecordRepo_UpdateReplacesInPlace(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			changed := testutil.NewTestCourse("Docker Deep Dive", testutil.WithCourseProgress(60))
			updated, err := repo.Update(ctx, 2, changed)
			require.NoError(t, err)
			assert.Equal(t, 2, updated.ID)

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"Advanced React Patterns", "Docker Deep Dive"}, names(list))
			assert.Equal(t, 60, list[1].Progress)

			got, err := repo.Get(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, updated, got)
		})
	}
}

func TestRecordRepo_UpdateFirstKeepsOrder(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			_, err := repo.Update(ctx, 1, testutil.NewTestCourse("React Hooks"))
			require.NoError(t, err)

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"React Hooks", "Docker and Kubernetes Fundamentals"}, names(list))
		})
	}
}

func TestRecordRepo_UpdateMissingIsNotFound(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			_, err := repo.Update(ctx, 42, testutil.NewTestCourse("Ghost"))
			require.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, err.Error(), "course 42")

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 2)
		})
	}
}

func TestRecordRepo_ModifySeesStoredRecord(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			saved, err := repo.Modify(ctx, 2, func(c domain.Course) (domain.Course, error) {
				assert.Equal(t, "Docker and Kubernetes Fundamentals", c.Name)
				c.Progress = 75
				return c.WithID(99), nil
			})
			require.NoError(t, err)
			assert.Equal(t, 2, saved.ID)

			got, err := repo.Get(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, saved, got)
			assert.Equal(t, "Docker and Kubernetes Fundamentals", got.Name)
			assert.Equal(t, 75, got.Progress)
		})
	}
}

func TestRecordRepo_ModifyErrorWritesNothing(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)
			before, err := repo.Get(ctx, 1)
			require.NoError(t, err)

			rejected := errors.New("rejected")
			_, err = repo.Modify(ctx, 1, func(c domain.Course) (domain.Course, error) {
				c.Name = "Changed"
				return c, rejected
			})
			require.ErrorIs(t, err, rejected)

			got, err := repo.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, before, got)

			_, err = repo.Modify(ctx, 42, func(c domain.Course) (domain.Course, error) { return c, nil })
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestRecordRepo_ConcurrentModifyKeepsEveryChange(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			const workers = 20
			var wg sync.WaitGroup
			errs := make(chan error, workers)
			for range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := repo.Modify(ctx, 1, func(c domain.Course) (domain.Course, error) {
						c.Progress++
						return c, nil
					})
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			got, err := repo.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, workers, got.Progress)
		})
	}
}

func TestRecordRepo_RemoveKeepsOthersInOrder(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)
			_, err := repo.Add(ctx, testutil.NewTestCourse("Third"))
			require.NoError(t, err)

			require.NoError(t, repo.Remove(ctx, 2))

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 3}, ids(list))

			_, err = repo.Get(ctx, 2)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestRecordRepo_RemoveMissingIsNotFound(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			err := repo.Remove(ctx, 7)
			require.ErrorIs(t, err, ErrNotFound)

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 2)
		})
	}
}

func TestRecordRepo_RemovedIDIsNotReused(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			require.NoError(t, repo.Remove(ctx, 2))
			added, err := repo.Add(ctx, testutil.NewTestCourse("After Delete"))
			require.NoError(t, err)
			assert.Equal(t, 3, added.ID)
		})
	}
}

func TestRecordRepo_ListReturnsCopy(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			list, err := repo.List(ctx)
			require.NoError(t, err)
			list[0].Name = "mutated"

			again, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, "Advanced React Patterns", again[0].Name)
		})
	}
}

func TestRecordRepo_EmptyListAfterRemovingAll(t *testing.T) {
	for name, newRepo := range courseBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t, seededCourses()...)

			require.NoError(t, repo.Remove(ctx, 1))
			require.NoError(t, repo.Remove(ctx, 2))

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}
