package controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"skysports_backend/internals/features/classes/top_classes/dto"
	"skysports_backend/internals/features/classes/top_classes/model"
	helper "skysports_backend/internals/helpers"
)

type TopClassStore interface {
	Create(ctx context.Context, m *model.TopClassModel) error
	List(ctx context.Context) ([]model.TopClassModel, error)
	ListByEmail(ctx context.Context, email string) ([]model.TopClassModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TopClassModel, error)
	Upsert(ctx context.Context, id uuid.UUID, fields map[string]any) (modified int64, inserted bool, err error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, feedBack *string) (int64, error)
}

type TopClassController struct {
	Classes TopClassStore
}

func NewTopClassController(classes TopClassStore) *TopClassController {
	return &TopClassController{Classes: classes}
}

// POST /topclass
func (tc *TopClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateTopClassRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}
	m := req.ToModel()
	if err := tc.Classes.Create(c.UserContext(), &m); err != nil {
		return err
	}
	log.Info().Str("class_id", m.ID.String()).Str("email", m.Email).Msg("class submitted")
	return helper.JsonCreated(c, m.ID)
}

// GET /topclass
func (tc *TopClassController) List(c *fiber.Ctx) error {
	out, err := tc.Classes.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// GET /topclass/email?email=
func (tc *TopClassController) ListByEmail(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonOK(c, []model.TopClassModel{})
	}
	out, err := tc.Classes.ListByEmail(c.UserContext(), email)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// GET /topclass/:id
func (tc *TopClassController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := tc.Classes.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, m)
}

// PUT /topclass/:id
func (tc *TopClassController) Upsert(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpsertTopClassRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}

	modified, inserted, err := tc.Classes.Upsert(c.UserContext(), id, req.Fields())
	if err != nil {
		return err
	}
	if inserted {
		return helper.JsonOK(c, helper.Upserted(id))
	}
	return helper.JsonOK(c, helper.Updated(1, modified))
}

// PATCH /topclass/:id
func (tc *TopClassController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}
	if err := req.Normalize(); err != nil {
		return err
	}

	n, err := tc.Classes.UpdateStatus(c.UserContext(), id, req.Status, req.FeedBack)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info().Str("class_id", id.String()).Str("status", req.Status).Msg("class reviewed")
	}
	return helper.JsonOK(c, helper.Updated(n, n))
}
