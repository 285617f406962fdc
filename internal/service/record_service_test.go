package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/editor"
	"github.com/alexanderramin/ladder/internal/repository"
	"github.com/alexanderramin/ladder/internal/sample"
	"github.com/alexanderramin/ladder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func newCourseService(obs ...UseCaseObserver) *RecordService[domain.Course] {
	return NewRecordService[domain.Course](repository.NewMemoryRecordRepo(sample.Courses()...), domain.NewCourse, obs...)
}

func TestRecordService_AddInProgressCourse(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService()

	saved, err := svc.Add(ctx, testutil.NewTestCourse("Go Generics", testutil.WithCourseStatus(domain.CourseInProgress)))
	require.NoError(t, err)
	assert.Equal(t, 3, saved.ID)
	assert.Equal(t, "In Progress", saved.Status.Label())
	assert.Equal(t, domain.ToneInfo, saved.Status.Tone())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRecordService_RemoveCoachingKeepsOther(t *testing.T) {
	ctx := context.Background()
	svc := NewRecordService[domain.CoachingSession](repository.NewMemoryRecordRepo(sample.CoachingSessions()...), domain.NewCoachingSession)

	require.NoError(t, svc.Remove(ctx, 1))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, "Michael Chen", list[0].Coach)
}

func TestRecordService_AddRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService()

	_, err := svc.Add(ctx, testutil.NewTestCourse("Too Far", testutil.WithCourseProgress(101)))
	require.ErrorIs(t, err, domain.ErrValidation)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRecordService_UpdateRejectsInvalid(t *testing.T) {
	svc := newCourseService()

	_, err := svc.Update(context.Background(), 1, domain.Course{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecordService_NotFoundPassesThrough(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService()

	_, err := svc.Update(ctx, 99, testutil.NewTestCourse("Nope"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, 99), repository.ErrNotFound)
	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecordService_KindAndBlank(t *testing.T) {
	svc := newCourseService()
	assert.Equal(t, domain.KindCourse, svc.Kind())
	assert.Equal(t, domain.NewCourse(), svc.Blank())
}

func TestRecordService_SessionCommitsThroughService(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := newCourseService(obs)

	sess := svc.NewSession()
	require.NoError(t, sess.Edit(ctx, 1))
	require.NoError(t, sess.Change(func(c *domain.Course) { c.Progress = 100; c.Status = domain.CourseCompleted }))
	_, err := sess.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, editor.Closed, sess.State())

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CourseCompleted, got.Status)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "update-record", obs.events[0].Name)
}

func TestRecordService_EmitsUseCaseEvents(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := newCourseService(obs)

	saved, err := svc.Add(ctx, testutil.NewTestCourse("Observed"))
	require.NoError(t, err)
	err = svc.Remove(ctx, 42)
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	add := obs.events[0]
	assert.Equal(t, "add-record", add.Name)
	assert.True(t, add.Success)
	assert.NotEmpty(t, add.ID)
	assert.Equal(t, "course", add.Fields["kind"])
	assert.Equal(t, saved.ID, add.Fields["id"])

	remove := obs.events[1]
	assert.Equal(t, "remove-record", remove.Name)
	assert.False(t, remove.Success)
	assert.ErrorIs(t, remove.Err, repository.ErrNotFound)
}

func TestLogUseCaseObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	svc := newCourseService(NewLogUseCaseObserver(&buf))

	_, err := svc.Add(context.Background(), testutil.NewTestCourse("Logged"))
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, "msg=service_use_case")
	assert.Contains(t, line, "use_case=add-record")
	assert.Contains(t, line, "kind=course")
	assert.Contains(t, line, "success=true")
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}

func TestRecordService_ModifyValidatesChange(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := newCourseService(obs)

	_, err := svc.Modify(ctx, 1, func(c domain.Course) domain.Course {
		c.Progress = 140
		return c
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, 140, got.Progress)

	saved, err := svc.Modify(ctx, 1, func(c domain.Course) domain.Course {
		c.Progress = 90
		return c
	})
	require.NoError(t, err)
	assert.Equal(t, 90, saved.Progress)
	assert.Equal(t, got.Name, saved.Name)

	require.Len(t, obs.events, 2)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "update-record", obs.events[1].Name)
	assert.True(t, obs.events[1].Success)
}
