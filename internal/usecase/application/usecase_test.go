package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"internship-management-backend/internal/domain/account"
	domain "internship-management-backend/internal/domain/application"
	companyDomain "internship-management-backend/internal/domain/company"
	positionDomain "internship-management-backend/internal/domain/position"
	studentDomain "internship-management-backend/internal/domain/student"
	"internship-management-backend/internal/testutil/applicationmock"
	"internship-management-backend/internal/testutil/companymock"
	"internship-management-backend/internal/testutil/positionmock"
	"internship-management-backend/internal/testutil/studentmock"
	"internship-management-backend/internal/testutil/uowmock"
)

// ----- helpers -----

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// companyFive resolves account 100 to company 5; every other account has no profile.
func companyFive() *companymock.Repo {
	return &companymock.Repo{
		GetByAccountIDFn: func(ctx context.Context, accountID uint64) (*companyDomain.Company, error) {
			if accountID == 100 {
				return &companyDomain.Company{ID: 5, AccountID: 100, Name: "Acme"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func newUsecase(apps *applicationmock.Repo, positions *positionmock.Repo, companies *companymock.Repo, students *studentmock.Repo) *Usecase {
	if apps == nil {
		apps = &applicationmock.Repo{}
	}
	if positions == nil {
		positions = &positionmock.Repo{}
	}
	if companies == nil {
		companies = companyFive()
	}
	if students == nil {
		students = &studentmock.Repo{}
	}
	return NewUsecase(apps, positions, companies, students, uowmock.Passthrough(apps))
}

// ----- List -----

func TestList_StudentScope(t *testing.T) {
	apps := &applicationmock.Repo{
		ListByStudentFn: func(ctx context.Context, studentID uint64) ([]domain.Application, error) {
			if studentID != 7 {
				t.Fatalf("scoped to student %d, want 7", studentID)
			}
			return []domain.Application{
				{ID: 1, StudentID: 7, PositionID: 3, CompanyID: 5, Status: domain.StatusPending},
				{ID: 2, StudentID: 7, PositionID: 4, CompanyID: 6, Status: domain.StatusRejected},
			}, nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	dtos, err := uc.List(context.Background(), 7, account.RoleStudent)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(dtos) != 2 || dtos[0].StudentID != 7 {
		t.Fatalf("unexpected result: %+v", dtos)
	}
}

func TestList_CompanyScope(t *testing.T) {
	apps := &applicationmock.Repo{
		ListByCompanyFn: func(ctx context.Context, companyID uint64) ([]domain.Application, error) {
			if companyID != 5 {
				t.Fatalf("scoped to company %d, want 5", companyID)
			}
			return []domain.Application{{ID: 9, StudentID: 7, PositionID: 3, CompanyID: 5}}, nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	dtos, err := uc.List(context.Background(), 100, account.RoleCompany)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(dtos) != 1 || dtos[0].CompanyID != 5 {
		t.Fatalf("unexpected result: %+v", dtos)
	}
}

func TestList_CompanyProfileMissing(t *testing.T) {
	uc := newUsecase(nil, nil, nil, nil)

	_, err := uc.List(context.Background(), 999, account.RoleCompany)
	if !errors.Is(err, companyDomain.ErrNotFound) {
		t.Fatalf("err = %v, want company ErrNotFound", err)
	}
}

func TestList_AdminRoleNotScoped(t *testing.T) {
	uc := newUsecase(nil, nil, nil, nil)

	if _, err := uc.List(context.Background(), 1, account.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

// ----- Create -----

func TestCreate_Success(t *testing.T) {
	positions := &positionmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*positionDomain.Position, error) {
			return &positionDomain.Position{ID: 3, CompanyID: 5, Status: positionDomain.StatusOpen}, nil
		},
	}
	apps := &applicationmock.Repo{
		GetByStudentAndPositionFn: func(ctx context.Context, studentID, positionID uint64) (*domain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, a *domain.Application) error {
			a.ID = 42
			return nil
		},
	}
	uc := newUsecase(apps, positions, nil, nil)

	dto, err := uc.Create(context.Background(), 7, CreateApplicationInput{PositionID: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.ID != 42 || dto.StudentID != 7 || dto.CompanyID != 5 || dto.PositionID != 3 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if dto.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q, want pending", dto.Status)
	}
	if dto.InterviewDate != nil || dto.InterviewTime != "" || dto.InterviewLocation != "" {
		t.Fatalf("interview fields must start empty: %+v", dto)
	}
}

func TestCreate_ClosedPosition(t *testing.T) {
	positions := &positionmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*positionDomain.Position, error) {
			return &positionDomain.Position{ID: 7, CompanyID: 5, Status: positionDomain.StatusClosed}, nil
		},
	}
	apps := &applicationmock.Repo{
		CreateFn: func(ctx context.Context, a *domain.Application) error {
			t.Fatalf("Create must not be called for a closed position")
			return nil
		},
	}
	uc := newUsecase(apps, positions, nil, nil)

	_, err := uc.Create(context.Background(), 7, CreateApplicationInput{PositionID: 7})
	if !errors.Is(err, positionDomain.ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}

func TestCreate_MissingPosition(t *testing.T) {
	positions := &positionmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*positionDomain.Position, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newUsecase(nil, positions, nil, nil)

	_, err := uc.Create(context.Background(), 7, CreateApplicationInput{PositionID: 404})
	if !errors.Is(err, positionDomain.ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}

func TestCreate_DuplicateApplication(t *testing.T) {
	positions := &positionmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*positionDomain.Position, error) {
			return &positionDomain.Position{ID: 3, CompanyID: 5, Status: positionDomain.StatusOpen}, nil
		},
	}
	apps := &applicationmock.Repo{
		GetByStudentAndPositionFn: func(ctx context.Context, studentID, positionID uint64) (*domain.Application, error) {
			return &domain.Application{ID: 1, StudentID: studentID, PositionID: positionID}, nil
		},
		CreateFn: func(ctx context.Context, a *domain.Application) error {
			t.Fatalf("Create must not be called when a duplicate exists")
			return nil
		},
	}
	uc := newUsecase(apps, positions, nil, nil)

	_, err := uc.Create(context.Background(), 7, CreateApplicationInput{PositionID: 3})
	if !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("err = %v, want ErrAlreadyApplied", err)
	}
}

func TestCreate_StoreConflictMapsToAlreadyApplied(t *testing.T) {
	positions := &positionmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*positionDomain.Position, error) {
			return &positionDomain.Position{ID: 3, CompanyID: 5, Status: positionDomain.StatusOpen}, nil
		},
	}
	// A racing create slipped between the pre-check and the insert; the
	// unique index is the authoritative signal.
	apps := &applicationmock.Repo{
		GetByStudentAndPositionFn: func(ctx context.Context, studentID, positionID uint64) (*domain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, a *domain.Application) error {
			return gorm.ErrDuplicatedKey
		},
	}
	uc := newUsecase(apps, positions, nil, nil)

	_, err := uc.Create(context.Background(), 7, CreateApplicationInput{PositionID: 3})
	if !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("err = %v, want ErrAlreadyApplied", err)
	}
}

// ----- Withdraw -----

func withdrawableApp() *domain.Application {
	return &domain.Application{ID: 1, StudentID: 7, PositionID: 3, CompanyID: 5, Status: domain.StatusPending}
}

func TestWithdraw_Success(t *testing.T) {
	deleted := false
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			return withdrawableApp(), nil
		},
		DeleteFn: func(ctx context.Context, id uint64) error {
			deleted = true
			return nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	if err := uc.Withdraw(context.Background(), 7, 1); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if !deleted {
		t.Fatal("Delete was not called")
	}
}

func TestWithdraw_NotOwner(t *testing.T) {
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			return withdrawableApp(), nil
		},
		DeleteFn: func(ctx context.Context, id uint64) error {
			t.Fatalf("Delete must not be called for a foreign application")
			return nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	if err := uc.Withdraw(context.Background(), 8, 1); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestWithdraw_NotPending(t *testing.T) {
	for _, status := range []domain.Status{domain.StatusInterviewing, domain.StatusAccepted, domain.StatusRejected} {
		apps := &applicationmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
				a := withdrawableApp()
				a.Status = status
				return a, nil
			},
			DeleteFn: func(ctx context.Context, id uint64) error {
				t.Fatalf("Delete must not be called while %s", status)
				return nil
			},
		}
		uc := newUsecase(apps, nil, nil, nil)

		if err := uc.Withdraw(context.Background(), 7, 1); !errors.Is(err, domain.ErrNotPending) {
			t.Fatalf("status %s: err = %v, want ErrNotPending", status, err)
		}
	}
}

func TestWithdraw_NotFound(t *testing.T) {
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	if err := uc.Withdraw(context.Background(), 7, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// ----- UpdateStatus -----

func TestUpdateStatus_InterviewingSetsDetails(t *testing.T) {
	var saved *domain.Application
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			return withdrawableApp(), nil
		},
		SaveFn: func(ctx context.Context, a *domain.Application) error {
			saved = a
			return nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	dto, err := uc.UpdateStatus(context.Background(), 100, 1, UpdateStatusInput{
		Status:            "interviewing",
		InterviewDate:     date("2024-06-01"),
		InterviewTime:     "10:00",
		InterviewLocation: "Room A",
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if saved == nil {
		t.Fatal("Save was not called")
	}
	if dto.Status != "interviewing" || dto.InterviewTime != "10:00" || dto.InterviewLocation != "Room A" {
		t.Fatalf("fields not set verbatim: %+v", dto)
	}
	if dto.InterviewDate == nil || !dto.InterviewDate.Equal(*date("2024-06-01")) {
		t.Fatalf("interview date = %v", dto.InterviewDate)
	}
}

func TestUpdateStatus_CaseInsensitive(t *testing.T) {
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			a := withdrawableApp()
			a.Status = domain.StatusInterviewing
			a.InterviewDate = date("2024-06-01")
			a.InterviewTime = "10:00"
			a.InterviewLocation = "Room A"
			return a, nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	dto, err := uc.UpdateStatus(context.Background(), 100, 1, UpdateStatusInput{Status: "ACCEPTED"})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if dto.Status != "accepted" {
		t.Fatalf("status = %q", dto.Status)
	}
	if dto.InterviewTime != "10:00" {
		t.Fatalf("interview fields must survive accept: %+v", dto)
	}
}

func TestUpdateStatus_InvalidStatusValue(t *testing.T) {
	uc := newUsecase(nil, nil, nil, nil)

	_, err := uc.UpdateStatus(context.Background(), 100, 1, UpdateStatusInput{Status: "approved"})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatus_ForeignCompany(t *testing.T) {
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			a := withdrawableApp()
			a.CompanyID = 6 // belongs to someone else
			return a, nil
		},
		SaveFn: func(ctx context.Context, a *domain.Application) error {
			t.Fatalf("Save must not be called for a foreign application")
			return nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	_, err := uc.UpdateStatus(context.Background(), 100, 1, UpdateStatusInput{Status: "rejected"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestUpdateStatus_AcceptWithoutDetails(t *testing.T) {
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			return withdrawableApp(), nil
		},
		SaveFn: func(ctx context.Context, a *domain.Application) error {
			t.Fatalf("Save must not be called on a failed accept")
			return nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	_, err := uc.UpdateStatus(context.Background(), 100, 1, UpdateStatusInput{Status: "accepted"})
	if !errors.Is(err, domain.ErrInterviewDetailsMissing) {
		t.Fatalf("err = %v, want ErrInterviewDetailsMissing", err)
	}
}

func TestUpdateStatus_RejectClearsDetails(t *testing.T) {
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			a := withdrawableApp()
			a.Status = domain.StatusInterviewing
			a.InterviewDate = date("2024-06-01")
			a.InterviewTime = "10:00"
			a.InterviewLocation = "Room A"
			return a, nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	dto, err := uc.UpdateStatus(context.Background(), 100, 1, UpdateStatusInput{Status: "rejected"})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if dto.Status != "rejected" || dto.InterviewDate != nil || dto.InterviewTime != "" || dto.InterviewLocation != "" {
		t.Fatalf("reject must clear the triple: %+v", dto)
	}
}

func TestUpdateStatus_CompanyProfileMissing(t *testing.T) {
	uc := newUsecase(nil, nil, nil, nil)

	_, err := uc.UpdateStatus(context.Background(), 999, 1, UpdateStatusInput{Status: "rejected"})
	if !errors.Is(err, companyDomain.ErrNotFound) {
		t.Fatalf("err = %v, want company ErrNotFound", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	apps := &applicationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	_, err := uc.UpdateStatus(context.Background(), 100, 404, UpdateStatusInput{Status: "rejected"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// ----- ListInterviews -----

func TestListInterviews_ScopeAndShape(t *testing.T) {
	apps := &applicationmock.Repo{
		ListByCompanyAndStatusesFn: func(ctx context.Context, companyID uint64, statuses ...domain.Status) ([]domain.Application, error) {
			if companyID != 5 {
				t.Fatalf("scoped to company %d, want 5", companyID)
			}
			if len(statuses) != 2 || statuses[0] != domain.StatusInterviewing || statuses[1] != domain.StatusAccepted {
				t.Fatalf("unexpected statuses: %v", statuses)
			}
			return []domain.Application{{
				ID: 1, StudentID: 7, PositionID: 3, CompanyID: 5,
				Status:        domain.StatusInterviewing,
				InterviewDate: date("2024-06-01"), InterviewTime: "10:00", InterviewLocation: "Room A",
			}}, nil
		},
	}
	uc := newUsecase(apps, nil, nil, nil)

	dtos, err := uc.ListInterviews(context.Background(), 100)
	if err != nil {
		t.Fatalf("ListInterviews: %v", err)
	}
	if len(dtos) != 1 || dtos[0].InterviewTime != "10:00" {
		t.Fatalf("unexpected result: %+v", dtos)
	}
}

// ----- AcceptedReport -----

func TestAcceptedReport_BestEffortJoins(t *testing.T) {
	apps := &applicationmock.Repo{
		ListByStatusFn: func(ctx context.Context, status domain.Status) ([]domain.Application, error) {
			if status != domain.StatusAccepted {
				t.Fatalf("status = %q, want accepted", status)
			}
			return []domain.Application{
				{ID: 1, StudentID: 7, PositionID: 3, CompanyID: 5, Status: domain.StatusAccepted},
				{ID: 2, StudentID: 8, PositionID: 99, CompanyID: 99, Status: domain.StatusAccepted},
			}, nil
		},
	}
	positions := &positionmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*positionDomain.Position, error) {
			if id == 3 {
				return &positionDomain.Position{ID: 3, CompanyID: 5, Title: "Backend Intern"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	companies := &companymock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*companyDomain.Company, error) {
			if id == 5 {
				return &companyDomain.Company{ID: 5, Name: "Acme"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	students := &studentmock.Repo{
		GetByAccountIDFn: func(ctx context.Context, accountID uint64) (*studentDomain.Student, error) {
			if accountID == 7 {
				return &studentDomain.Student{ID: 70, AccountID: 7}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newUsecase(apps, positions, companies, students)

	report, err := uc.AcceptedReport(context.Background())
	if err != nil {
		t.Fatalf("AcceptedReport: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("len = %d, want 2", len(report))
	}
	if report[0].Student == nil || report[0].Company == nil || report[0].Position == nil {
		t.Fatalf("joins missing on fully-resolvable row: %+v", report[0])
	}
	// missing references are null, not an error
	if report[1].Student != nil || report[1].Company != nil || report[1].Position != nil {
		t.Fatalf("unresolvable joins must stay null: %+v", report[1])
	}
}
