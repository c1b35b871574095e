package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/tempo-networks/budget-server/internal/operator/actions"
	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

const generatedCommentPrefix = "Auto-generated from recurring: "

// RecurringService handles recurring templates and their materialization
// into transactions.
type RecurringService struct {
	storage  *storage.Storage
	operator actionProcessor
	log      *logrus.Logger

	// now is swapped out in tests.
	now func() time.Time
}

// NewRecurringService creates a new RecurringService.
func NewRecurringService(store *storage.Storage, op actionProcessor, log *logrus.Logger) *RecurringService {
	return &RecurringService{
		storage:  store,
		operator: op,
		log:      log,
		now:      time.Now,
	}
}

// CreateTemplate creates an active recurring template. The day field is
// validated against the frequency before anything is stored.
func (s *RecurringService) CreateTemplate(ctx context.Context, userID, budgetID uuid.UUID, create RecurringTemplateCreate) (RecurringTemplate, error) {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return RecurringTemplate{}, err
	}

	category, err := s.storage.Categories.FindByID(ctx, create.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return RecurringTemplate{}, ErrNotFound
	}
	if err != nil {
		return RecurringTemplate{}, err
	}
	if category.BudgetID != budgetID {
		return RecurringTemplate{}, ErrNotFound
	}

	storageCreate := &sqlconfig.RecurringTemplateCreate{
		BudgetID:   budgetID,
		CategoryID: create.CategoryID,
		Title:      create.Title,
		Amount:     create.Amount,
		Kind:       create.Kind,
		Frequency:  create.Frequency,
		Day:        dayToStorage(create.Day),
	}
	if _, err = scheduleFromTemplate(&sqlconfig.RecurringTemplate{
		Frequency: create.Frequency,
		Day:       storageCreate.Day,
		CreatedAt: s.now(),
	}); err != nil {
		return RecurringTemplate{}, err
	}

	row, err := s.storage.Recurring.Insert(ctx, storageCreate)
	if err != nil {
		return RecurringTemplate{}, err
	}
	return recurringFromStorage(row), nil
}

// ListTemplates returns all recurring templates of a budget.
func (s *RecurringService) ListTemplates(ctx context.Context, userID, budgetID uuid.UUID) ([]RecurringTemplate, error) {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return nil, err
	}

	rows, err := s.storage.Recurring.ListByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	templates := make([]RecurringTemplate, len(rows))
	for i, row := range rows {
		templates[i] = recurringFromStorage(row)
	}
	return templates, nil
}

// SetTemplateActive pauses or resumes a template. Paused templates are
// skipped by materialization but keep their history.
func (s *RecurringService) SetTemplateActive(ctx context.Context, userID, budgetID, templateID uuid.UUID, active bool) error {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return err
	}

	if _, err := s.findInBudget(ctx, templateID, budgetID); err != nil {
		return err
	}
	return s.storage.Recurring.SetActive(ctx, templateID, active)
}

// DeleteTemplate removes a template. Transactions already materialized
// from it are left in place.
func (s *RecurringService) DeleteTemplate(ctx context.Context, userID, budgetID, templateID uuid.UUID) error {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return err
	}

	if _, err := s.findInBudget(ctx, templateID, budgetID); err != nil {
		return err
	}
	return s.storage.Recurring.Delete(ctx, templateID)
}

// ProcessRecurring materializes every active template of the budget for
// the current month up to today and returns the newly created
// transactions. Running it again in the same window creates nothing.
func (s *RecurringService) ProcessRecurring(ctx context.Context, userID, budgetID uuid.UUID) ([]Transaction, error) {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return nil, err
	}

	templates, err := s.storage.Recurring.ListActiveByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var occurrences []actions.Occurrence
	for _, tmpl := range templates {
		dates, err := ExpandSchedule(tmpl, now)
		if err != nil {
			// A malformed template must not block the others.
			s.log.WithError(err).WithField("template_id", tmpl.ID).
				Warn("RecurringService.ProcessRecurring.SkipTemplate")
			continue
		}

		for _, date := range dates {
			occurrences = append(occurrences, actions.Occurrence{
				BudgetID:   tmpl.BudgetID,
				CategoryID: tmpl.CategoryID,
				Title:      tmpl.Title,
				Amount:     tmpl.Amount,
				Kind:       tmpl.Kind,
				Date:       date,
				Comment:    generatedCommentPrefix + tmpl.Title,
			})
		}
	}

	action := &actions.MaterializeRecurring{Occurrences: occurrences}
	if err = s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	created := make([]Transaction, len(action.Created))
	for i, row := range action.Created {
		created[i] = transactionFromStorage(row)
	}
	return created, nil
}

func (s *RecurringService) findInBudget(ctx context.Context, templateID, budgetID uuid.UUID) (*sqlconfig.RecurringTemplate, error) {
	row, err := s.storage.Recurring.FindByID(ctx, templateID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if row.BudgetID != budgetID {
		return nil, ErrNotFound
	}
	return row, nil
}
