package controllers

import (
	"strconv"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/resp"
	"github.com/SARVESHYOGI/store-rating-system/repository"
	"github.com/SARVESHYOGI/store-rating-system/services"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address" binding:"max=400"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Name    string `json:"name" binding:"required,min=3,max=60"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"max=400"`
	Role    string `json:"role"`
}

// UserController is admin-only; the route guard enforces that.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GET /users?name=&email=&address=&role=
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.users.Search(repository.UserFilter{
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Address: c.Query("address"),
		Role:    entity.Role(c.Query("role")),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /users
func (uc *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.users.Create(services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

// GET /users/:id
func (uc *UserController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	detail, err := uc.users.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// PUT /users/:id — the only endpoint where a role changes by request.
func (uc *UserController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.users.Update(uint(id), services.UpdateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Role:    entity.Role(req.Role),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /users/:id
func (uc *UserController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if err := uc.users.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user deleted successfully"})
}
