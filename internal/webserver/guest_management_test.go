package webserver_test

import (
	"net/http"
	"testing"

	"github.com/doorlist/doorlist/internal/infrastructure"
	"github.com/doorlist/doorlist/internal/model"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestApprovalAndLedger(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	sender := &SenderMock{}
	app := bootstrapApp(db, sender)

	createPromoter(t, app, "P1")
	guestID := registerGuest(t, app, "invited@example.com", "P1")

	t.Run("Approving a pending guest credits its promoter once", func(t *testing.T) {
		sender.wg.Add(1)
		response, err := adminPost(app, "/api/approve", fiber.Map{"id": guestID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)
		sender.wg.Wait()

		guest := mustFindGuest(t, db, guestID)
		if guest.Status != model.StatusApproved {
			t.Errorf("Expected guest to be APPROVED, got %s", guest.Status)
		}
		if guest.QrCode != guestID {
			t.Errorf("Expected the guest id as QR payload, got %q", guest.QrCode)
		}
		if invites(t, db, "P1") != 1 {
			t.Errorf("Expected 1 invite credited, got %d", invites(t, db, "P1"))
		}
	})

	t.Run("Re-approving an approved guest does not credit again", func(t *testing.T) {
		response, err := adminPost(app, "/api/approve", fiber.Map{"id": guestID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		if invites(t, db, "P1") != 1 {
			t.Errorf("Expected 1 invite after re-approval, got %d", invites(t, db, "P1"))
		}
	})

	t.Run("Rejecting an approved guest leaves the ledger untouched", func(t *testing.T) {
		response, err := adminPost(app, "/api/reject", fiber.Map{"id": guestID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		guest := mustFindGuest(t, db, guestID)
		if guest.Status != model.StatusRejected {
			t.Errorf("Expected guest to be REJECTED, got %s", guest.Status)
		}
		if invites(t, db, "P1") != 1 {
			t.Errorf("Expected 1 invite after rejection, got %d", invites(t, db, "P1"))
		}
	})

	t.Run("Restoring a rejected guest does not credit a second time", func(t *testing.T) {
		sender.wg.Add(1)
		response, err := adminPost(app, "/api/approve", fiber.Map{"id": guestID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)
		sender.wg.Wait()

		guest := mustFindGuest(t, db, guestID)
		if guest.Status != model.StatusApproved {
			t.Errorf("Expected guest to be APPROVED again, got %s", guest.Status)
		}
		if invites(t, db, "P1") != 1 {
			t.Errorf("Expected 1 invite after an approve/reject/approve cycle, got %d", invites(t, db, "P1"))
		}
	})

	t.Run("Deleting a credited guest reverses the credit", func(t *testing.T) {
		response, err := adminPost(app, "/api/delete-guest", fiber.Map{"id": guestID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		if invites(t, db, "P1") != 0 {
			t.Errorf("Expected the credit to be reversed, got %d", invites(t, db, "P1"))
		}

		var total int64
		db.Model(&model.Guest{}).Where("id = ?", guestID).Count(&total)
		if total != 0 {
			t.Error("Expected the guest row to be gone")
		}
	})

	t.Run("Deleting an uncredited guest never drives the counter negative", func(t *testing.T) {
		pendingID := registerGuest(t, app, "pending@example.com", "P1")

		response, err := adminPost(app, "/api/delete-guest", fiber.Map{"id": pendingID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		if invites(t, db, "P1") != 0 {
			t.Errorf("Expected the counter to stay at 0, got %d", invites(t, db, "P1"))
		}
	})

	t.Run("Approving a missing guest returns not found", func(t *testing.T) {
		response, err := adminPost(app, "/api/approve", fiber.Map{"id": "no-such-id"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusNotFound, t)
	})
}

func TestManualCheckIn(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	guestID := registerGuest(t, app, "walkin@example.com", "")

	t.Run("Mark a pending guest as entered", func(t *testing.T) {
		response, err := adminPost(app, "/api/manual-checkin", fiber.Map{"id": guestID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		guest := mustFindGuest(t, db, guestID)
		if !guest.IsUsed || guest.UsedAt == nil {
			t.Error("Expected the guest to be checked in with a timestamp")
		}
	})

	t.Run("A second manual check-in keeps the original timestamp", func(t *testing.T) {
		before := mustFindGuest(t, db, guestID)

		response, err := adminPost(app, "/api/manual-checkin", fiber.Map{"id": guestID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		after := mustFindGuest(t, db, guestID)
		if !after.UsedAt.Equal(*before.UsedAt) {
			t.Errorf("Expected used_at to be written once, got %v then %v", before.UsedAt, after.UsedAt)
		}
	})
}

func TestUpdateGuest(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	guestID := registerGuest(t, app, "editable@example.com", "")
	otherID := registerGuest(t, app, "other@example.com", "")

	t.Run("Edit identity fields", func(t *testing.T) {
		response, err := adminPost(app, "/api/update-guest", fiber.Map{
			"id":        guestID,
			"firstName": "Edited",
			"lastName":  "Guest",
			"email":     "edited@example.com",
			"instagram": "edited",
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		guest := mustFindGuest(t, db, guestID)
		if guest.FirstName != "Edited" || guest.Email != "edited@example.com" {
			t.Errorf("Expected edited fields, got %q %q", guest.FirstName, guest.Email)
		}
		if guest.Status != model.StatusPending {
			t.Errorf("Expected status to be untouched, got %s", guest.Status)
		}
	})

	t.Run("Refuse an email already used by another guest", func(t *testing.T) {
		response, err := adminPost(app, "/api/update-guest", fiber.Map{
			"id":        otherID,
			"firstName": "Other",
			"lastName":  "Guest",
			"email":     "edited@example.com",
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusBadRequest, t)
	})
}

func TestResendQrAndReset(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	sender := &SenderMock{}
	app := bootstrapApp(db, sender)

	createPromoter(t, app, "P1")
	guestID := registerGuest(t, app, "resend@example.com", "P1")

	t.Run("Resend the QR pass by email", func(t *testing.T) {
		sender.wg.Add(1)
		response, err := adminPost(app, "/api/resend-qr", fiber.Map{"id": guestID})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)
		sender.wg.Wait()

		sender.mu.Lock()
		defer sender.mu.Unlock()
		if len(sender.recipients) != 1 || sender.recipients[0] != "resend@example.com" {
			t.Errorf("Expected one email to the guest, got %v", sender.recipients)
		}
	})

	t.Run("Reset wipes guests but keeps promoters", func(t *testing.T) {
		response, err := adminPost(app, "/api/reset", nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		var guests, promoters int64
		db.Model(&model.Guest{}).Count(&guests)
		db.Model(&model.Promoter{}).Count(&promoters)
		if guests != 0 {
			t.Errorf("Expected an empty guest list, got %d", guests)
		}
		if promoters != 1 {
			t.Errorf("Expected promoters to survive the reset, got %d", promoters)
		}
	})
}

func registerGuest(t *testing.T, app *fiber.App, email, promoterCode string) string {
	t.Helper()

	response, err := app.Test(jsonRequest(http.MethodPost, "/api/register", fiber.Map{
		"firstName":    "Test",
		"lastName":     "Guest",
		"email":        email,
		"promoterCode": promoterCode,
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnStatus(response, fiber.StatusOK, t)

	body := decodeBody(t, response)
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatal("Expected a guest id in the registration response")
	}
	return id
}

func mustFindGuest(t *testing.T, db *gorm.DB, id string) model.Guest {
	t.Helper()

	guest := model.Guest{}
	if err := db.Where("id = ?", id).First(&guest).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return guest
}

func invites(t *testing.T, db *gorm.DB, code string) int {
	t.Helper()

	promoter := model.Promoter{}
	if err := db.Where("code = ?", code).First(&promoter).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return promoter.InvitesCount
}
