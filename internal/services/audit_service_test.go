package services

import (
	"strings"
	"testing"

	"mymoney/internal/models"
	"mymoney/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	t.Run("records_entry_with_request_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)

		svc.Log(user.ID, "CREATE_ACCOUNT", "account", 7, "10.0.0.1", "req-abc123",
			map[string]interface{}{"name": "Main", "balance": 50000})

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)

		if entry.Action != "CREATE_ACCOUNT" {
			t.Errorf("expected action CREATE_ACCOUNT, got %s", entry.Action)
		}
		if entry.ResourceType != "account" || entry.ResourceID != 7 {
			t.Errorf("expected resource account/7, got %s/%d", entry.ResourceType, entry.ResourceID)
		}
		if entry.RequestID != "req-abc123" {
			t.Errorf("expected request ID req-abc123, got %s", entry.RequestID)
		}
		if !strings.Contains(entry.Changes, "Main") {
			t.Errorf("expected changes to contain the account name, got %s", entry.Changes)
		}
	})

	t.Run("nil_changes_stored_as_empty_object", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)

		svc.Log(user.ID, "DELETE_TRANSACTION", "transaction", 42, "10.0.0.1", "req-def456", nil)

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)
		if entry.Changes != "{}" {
			t.Errorf("expected empty JSON object, got %q", entry.Changes)
		}
	})
}
