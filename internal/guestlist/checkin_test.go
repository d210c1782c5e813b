package guestlist_test

import (
	"sync"
	"testing"

	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/doorlist/doorlist/internal/infrastructure"
	"github.com/doorlist/doorlist/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestConcurrentCheckIn(t *testing.T) {
	db := connect(t)
	service := guestlist.NewCheckInService(db)

	guest := model.Guest{
		ID:        uuid.NewString(),
		FirstName: "Race",
		LastName:  "Condition",
		Email:     "race@example.com",
		Status:    model.StatusApproved,
	}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	const scanners = 8
	outcomes := make(chan guestlist.Outcome, scanners)
	var wg sync.WaitGroup

	for i := 0; i < scanners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := service.Resolve(guest.ID)
			if err != nil {
				t.Errorf("Unexpected error: %v", err.Error())
				return
			}
			outcomes <- result.Outcome
		}()
	}
	wg.Wait()
	close(outcomes)

	admitted, alreadyUsed := 0, 0
	for outcome := range outcomes {
		switch outcome {
		case guestlist.OutcomeAdmitted:
			admitted++
		case guestlist.OutcomeAlreadyUsed:
			alreadyUsed++
		default:
			t.Errorf("Unexpected outcome %s", outcome)
		}
	}

	if admitted != 1 {
		t.Errorf("Expected exactly one admission, got %d", admitted)
	}
	if alreadyUsed != scanners-1 {
		t.Errorf("Expected %d already-used outcomes, got %d", scanners-1, alreadyUsed)
	}
}

func TestResolveOutcomes(t *testing.T) {
	db := connect(t)
	service := guestlist.NewCheckInService(db)

	promoter := model.Promoter{
		ID:        uuid.NewString(),
		FirstName: "Test",
		LastName:  "Promoter",
		Code:      "P1",
		Password:  "pass",
	}
	if err := db.Create(&promoter).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	rejected := model.Guest{
		ID:        uuid.NewString(),
		FirstName: "Rejected",
		LastName:  "Guest",
		Email:     "rejected@example.com",
		Status:    model.StatusRejected,
	}
	if err := db.Create(&rejected).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	var cases = []struct {
		name     string
		code     string
		expected guestlist.Outcome
	}{
		{"A non-approved guest is denied", rejected.ID, guestlist.OutcomeNotApproved},
		{"A promoter id is identified", promoter.ID, guestlist.OutcomePromoter},
		{"Anything else is unknown", "garbage", guestlist.OutcomeUnknown},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			result, err := service.Resolve(tcase.code)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			if result.Outcome != tcase.expected {
				t.Errorf("Expected %s, got %s", tcase.expected, result.Outcome)
			}
		})
	}
}

// connect opens an in-memory database restricted to a single
// connection, so every goroutine sees the same data.
func connect(t *testing.T) *gorm.DB {
	t.Helper()

	db := infrastructure.Connect("file::memory:")
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}
