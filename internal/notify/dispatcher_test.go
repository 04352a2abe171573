// internal/notify/dispatcher_test.go
package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/models"
	"internship-allocator/internal/store"
)

func waitForSent(t *testing.T, sender *SimulatedSender, want int) []Email {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if sent := sender.Sent(); len(sent) >= want {
			return sent
		}
		select {
		case <-deadline:
			t.Fatalf("expected %d sent emails, got %d", want, len(sender.Sent()))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestDispatcher_DeliversQueuedEmails(t *testing.T) {
	sender := NewSimulatedSender(logger.NewNoOpLogger())
	d := NewDispatcher(sender, 8, logger.NewNoOpLogger())
	defer d.Close()

	applicant := models.Applicant{Name: "Aarav Sharma", Email: "aarav@example.com"}
	posting := models.Posting{ID: "p1", Title: "React Internship"}

	assert.True(t, d.Enqueue(SelectionEmail(applicant, posting)))
	assert.True(t, d.Enqueue(RejectionEmail(applicant, posting)))

	sent := waitForSent(t, sender, 2)
	assert.Equal(t, "aarav@example.com", sent[0].To)
	assert.Equal(t, KindSelection, sent[0].Kind)
	assert.Contains(t, sent[0].Body, "React Internship")
	assert.Equal(t, KindRejection, sent[1].Kind)
}

func TestDispatcher_RejectsAfterClose(t *testing.T) {
	sender := NewSimulatedSender(logger.NewNoOpLogger())
	d := NewDispatcher(sender, 8, logger.NewNoOpLogger())
	d.Close()

	ok := d.Enqueue(Email{To: "x@example.com", Kind: KindSelection})
	assert.False(t, ok)
}

func TestDispatcher_EnqueueConcurrentWithCloseDoesNotPanic(t *testing.T) {
	sender := NewSimulatedSender(logger.NewNoOpLogger())
	d := NewDispatcher(sender, 64, logger.NewNoOpLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Enqueue(Email{To: "x@example.com", Kind: KindSelection})
			}
		}()
	}
	d.Close()
	wg.Wait()

	// Close is idempotent and late enqueues are refused.
	d.Close()
	assert.False(t, d.Enqueue(Email{To: "y@example.com", Kind: KindSelection}))
}

func TestDispatcher_CloseDrainsQueuedEmails(t *testing.T) {
	sender := NewSimulatedSender(logger.NewNoOpLogger())
	d := NewDispatcher(sender, 8, logger.NewNoOpLogger())

	require.True(t, d.Enqueue(Email{To: "a@example.com", Kind: KindSelection}))
	require.True(t, d.Enqueue(Email{To: "b@example.com", Kind: KindRejection}))
	d.Close()

	waitForSent(t, sender, 2)
}

func TestTemplates(t *testing.T) {
	applicant := models.Applicant{Name: "Diya Patel", Email: "diya@example.com"}
	posting := models.Posting{ID: "p2", Title: "Data Analyst Internship"}

	tb := TieBreakEmail(applicant, posting.Title, "https://assess.example.com/p2/a1/ref")
	assert.Contains(t, tb.Body, "https://assess.example.com/p2/a1/ref")
	assert.Equal(t, KindTieBreak, tb.Kind)

	top := TopCandidateEmail(applicant, posting, 1, 92.5)
	assert.Contains(t, top.Body, "rank 1")
	assert.Contains(t, top.Body, "92.50")

	meeting := models.Meeting{
		MeetingID: "m1", PostID: "p2", ApplicantID: "a1",
		Datetime: "2026-09-15T10:00:00Z", JoinURL: "https://meet.example.com/m1",
	}
	inv := MeetingEmail(applicant, meeting, posting.Title)
	assert.Contains(t, inv.Body, "https://meet.example.com/m1")
	assert.Equal(t, KindMeeting, inv.Kind)
}

func TestFeedNotifier_PublishesToFeed(t *testing.T) {
	feed := store.NewNotificationFeed()
	n := NewFeedNotifier(feed, nil, "", logger.NewNoOpLogger())

	n.Notify("it_software", "Internship 'React Internship' moved to Past (all positions filled).")

	notes := feed.List("it_software")
	require.Len(t, notes, 1)
	assert.NotEmpty(t, notes[0].ID)
	assert.Contains(t, notes[0].Message, "moved to Past")

	assert.Empty(t, feed.List("healthcare"))
}
