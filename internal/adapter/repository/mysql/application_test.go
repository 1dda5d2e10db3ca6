package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "internship-management-backend/internal/domain/application"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type applicationSQLite struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	StudentID         uint64     `gorm:"column:student_id;uniqueIndex:ux_applications_student_position"`
	PositionID        uint64     `gorm:"column:position_id;uniqueIndex:ux_applications_student_position"`
	CompanyID         uint64     `gorm:"column:company_id"`
	Status            string     `gorm:"type:text;column:status"` // ← no enum
	InterviewDate     *time.Time `gorm:"column:interview_date"`
	InterviewTime     string     `gorm:"column:interview_time"`
	InterviewLocation string     `gorm:"column:interview_location"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (applicationSQLite) TableName() string { return "applications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(&applicationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeApplication(studentID, positionID, companyID uint64) *domain.Application {
	return &domain.Application{
		StudentID:  studentID,
		PositionID: positionID,
		CompanyID:  companyID,
		Status:     domain.StatusPending,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication(7, 3, 5)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.StudentID != 7 || got.PositionID != 3 || got.Status != domain.StatusPending {
		t.Errorf("unexpected application: %+v", got)
	}
}

func TestCreate_UniqueStudentPosition(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeApplication(7, 3, 5)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, makeApplication(7, 3, 5))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	// same student, different position is fine
	if err := repo.Create(ctx, makeApplication(7, 4, 5)); err != nil {
		t.Fatalf("Create for second position: %v", err)
	}
}

func TestSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication(7, 3, 5)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	when := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a.Status = domain.StatusInterviewing
	a.InterviewDate = &when
	a.InterviewTime = "10:00"
	a.InterviewLocation = "Room A"
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != domain.StatusInterviewing || got.InterviewTime != "10:00" || got.InterviewLocation != "Room A" {
		t.Errorf("update not persisted: %+v", got)
	}
	if got.InterviewDate == nil || !got.InterviewDate.Equal(when) {
		t.Errorf("interview date = %v, want %v", got.InterviewDate, when)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDelete_AllowsReapply(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication(7, 3, 5)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after delete, got %v", err)
	}

	// the unique index slot is free again
	if err := repo.Create(ctx, makeApplication(7, 3, 5)); err != nil {
		t.Fatalf("re-apply after delete: %v", err)
	}
}

func TestGetByStudentAndPosition(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeApplication(7, 3, 5)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, makeApplication(8, 3, 5)); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByStudentAndPosition(ctx, 7, 3)
	if err != nil {
		t.Fatalf("GetByStudentAndPosition: %v", err)
	}
	if got.StudentID != 7 || got.PositionID != 3 {
		t.Errorf("unexpected application: %+v", got)
	}

	_, err = repo.GetByStudentAndPosition(ctx, 7, 99)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListScopes(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	seed := []*domain.Application{
		makeApplication(7, 1, 5),
		makeApplication(7, 2, 6),
		makeApplication(8, 1, 5),
	}
	for _, a := range seed {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	byStudent, err := repo.ListByStudent(ctx, 7)
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(byStudent) != 2 {
		t.Errorf("ListByStudent len = %d, want 2", len(byStudent))
	}

	byCompany, err := repo.ListByCompany(ctx, 5)
	if err != nil {
		t.Fatalf("ListByCompany: %v", err)
	}
	if len(byCompany) != 2 {
		t.Errorf("ListByCompany len = %d, want 2", len(byCompany))
	}

	empty, err := repo.ListByStudent(ctx, 99)
	if err != nil {
		t.Fatalf("ListByStudent empty: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no rows, got %d", len(empty))
	}
}

func TestListByCompanyAndStatuses(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	pending := makeApplication(7, 1, 5)
	interviewing := makeApplication(8, 1, 5)
	interviewing.Status = domain.StatusInterviewing
	accepted := makeApplication(9, 1, 5)
	accepted.Status = domain.StatusAccepted
	otherCompany := makeApplication(7, 2, 6)
	otherCompany.Status = domain.StatusInterviewing

	for _, a := range []*domain.Application{pending, interviewing, accepted, otherCompany} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.ListByCompanyAndStatuses(ctx, 5, domain.StatusInterviewing, domain.StatusAccepted)
	if err != nil {
		t.Fatalf("ListByCompanyAndStatuses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	for _, a := range got {
		if a.Status == domain.StatusPending || a.CompanyID != 5 {
			t.Errorf("row leaked into interview list: %+v", a)
		}
	}
}

func TestListByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	accepted := makeApplication(7, 1, 5)
	accepted.Status = domain.StatusAccepted
	pending := makeApplication(8, 1, 5)

	for _, a := range []*domain.Application{accepted, pending} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.ListByStatus(ctx, domain.StatusAccepted)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(got) != 1 || got[0].Status != domain.StatusAccepted {
		t.Fatalf("unexpected rows: %+v", got)
	}
}
