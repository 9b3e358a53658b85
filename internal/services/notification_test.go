package services

import (
	"testing"

	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/store"
)

func TestNotificationService_Helpers(t *testing.T) {
	st := store.NewStore(nil)
	svc := NewNotificationService(st)

	svc.Success("Project shared", "sent to 2 recipients")
	svc.Error("Upload failed", "disk full")
	svc.Warning("Deadline approaching", "Harbor Bridge Repair due in 2 days")
	svc.Info("Welcome", "demo data loaded")

	got := st.Notifications()
	if len(got) != 4 {
		t.Fatalf("got %d notifications, expected 4", len(got))
	}

	wantTypes := []string{models.NotifySuccess, models.NotifyError, models.NotifyWarning, models.NotifyInfo}
	for i, want := range wantTypes {
		if got[i].Type != want {
			t.Errorf("notification %d type = %q, expected %q", i, got[i].Type, want)
		}
	}

	// Errors stay until dismissed; the rest expire
	if got[1].ExpiresAt != nil {
		t.Error("error notification should not expire")
	}
	if got[0].ExpiresAt == nil || got[2].ExpiresAt == nil || got[3].ExpiresAt == nil {
		t.Error("transient notifications should carry an expiry")
	}
}
