package controllers

import (
	"strconv"

	"github.com/SARVESHYOGI/store-rating-system/pkg/authz"
	"github.com/SARVESHYOGI/store-rating-system/pkg/resp"
	"github.com/SARVESHYOGI/store-rating-system/services"
	"github.com/SARVESHYOGI/store-rating-system/utils"

	"github.com/gin-gonic/gin"
)

type StoreRequest struct {
	Name    string `json:"name" binding:"required,min=3,max=60"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"max=400"`
	OwnerID uint   `json:"ownerId"`
}

type StoreController struct {
	stores *services.StoreService
}

func NewStoreController(stores *services.StoreService) *StoreController {
	return &StoreController{stores: stores}
}

// GET /stores?name=&address=
func (sc *StoreController) List(c *gin.Context) {
	ident, _ := utils.CurrentIdentity(c)
	items, err := sc.stores.List(ident, c.Query("name"), c.Query("address"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /stores/:id
func (sc *StoreController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid store id")
		return
	}
	ident, _ := utils.CurrentIdentity(c)

	detail, err := sc.stores.Detail(ident, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /stores (admin, via route guard)
func (sc *StoreController) Create(c *gin.Context) {
	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.OwnerID == 0 {
		resp.BadRequest(c, "ownerId is required")
		return
	}

	store, err := sc.stores.Create(services.StoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, store)
}

// PUT /stores/:id — admin or the owning user.
func (sc *StoreController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid store id")
		return
	}

	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store, err := sc.stores.Find(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}

	ident, _ := utils.CurrentIdentity(c)
	if d := authz.Authorize(ident, authz.UpdateStore, &authz.Resource{Store: store}); !d.Allowed {
		resp.Forbidden(c, d.Reason)
		return
	}

	updated, err := sc.stores.Update(uint(id), req.Name, req.Email, req.Address)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /stores/:id (admin, via route guard). Ratings go with it.
func (sc *StoreController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid store id")
		return
	}
	if err := sc.stores.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "store deleted successfully"})
}
