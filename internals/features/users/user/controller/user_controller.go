package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"skysports_backend/internals/constants"
	"skysports_backend/internals/features/users/user/dto"
	"skysports_backend/internals/features/users/user/model"
	"skysports_backend/internals/features/users/user/repository"
	helper "skysports_backend/internals/helpers"
)

// UserStore is the persistence the user endpoints need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	FindOne(ctx context.Context, f dto.UserFilter) (*model.UserModel, error)
	List(ctx context.Context) ([]model.UserModel, error)
	Create(ctx context.Context, u *model.UserModel) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (matched, modified int64, err error)
}

type UserController struct {
	Users UserStore
}

func NewUserController(users UserStore) *UserController {
	return &UserController{Users: users}
}

// GET /users and GET /alluser
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := uc.Users.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, users)
}

// GET /user?email=&name=&role=
func (uc *UserController) FindUser(c *fiber.Ctx) error {
	var f dto.UserFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}
	user, err := uc.Users.FindOne(c.UserContext(), f)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, user)
}

// GET /users/:id
func (uc *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := uc.Users.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, user)
}

// GET /users/admin/:email, after RequireSelf.
func (uc *UserController) IsAdmin(c *fiber.Ctx) error {
	user, err := uc.lookupPathEmail(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminCheckResponse{Admin: user.IsAdmin()})
}

// GET /users/instructor/:email, after RequireSelf.
func (uc *UserController) IsInstructor(c *fiber.Ctx) error {
	user, err := uc.lookupPathEmail(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.InstructorCheckResponse{Instructor: user.IsInstructor()})
}

// POST /users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}
	user := req.ToModel()

	existing, err := uc.Users.FindByEmail(c.UserContext(), user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return c.JSON(dto.MessageResponse{Message: constants.MsgAlreadyExist})
	}

	if err := uc.Users.Create(c.UserContext(), &user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.JSON(dto.MessageResponse{Message: constants.MsgAlreadyExist})
		}
		return err
	}

	log.Info().Str("email", user.Email).Str("id", user.ID.String()).Msg("user created")
	return helper.JsonCreated(c, user.ID)
}

// PATCH /users/:id
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateRoleRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}

	matched, modified, err := uc.Users.UpdateRole(c.UserContext(), id, req.Role)
	if err != nil {
		return err
	}
	if modified > 0 {
		log.Info().Str("user_id", id.String()).Str("role", req.Role).Msg("user role changed")
	}
	return helper.JsonOK(c, helper.Updated(matched, modified))
}

func (uc *UserController) lookupPathEmail(c *fiber.Ctx) (*model.UserModel, error) {
	identity, ok := authIdentity(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}
	// RequireSelf already proved the path email equals the token email.
	return uc.Users.FindByEmail(c.UserContext(), identity)
}
