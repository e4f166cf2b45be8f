package controllers

import (
	"strconv"

	"github.com/SARVESHYOGI/store-rating-system/pkg/resp"
	"github.com/SARVESHYOGI/store-rating-system/services"
	"github.com/SARVESHYOGI/store-rating-system/utils"

	"github.com/gin-gonic/gin"
)

type SubmitRatingRequest struct {
	StoreID uint `json:"storeId" binding:"required"`
	Rating  int  `json:"rating" binding:"required,min=1,max=5"`
}

type RatingController struct {
	ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{ratings: ratings}
}

// POST /ratings — upsert; 201 on first submission, 200 on replace.
func (rc *RatingController) Submit(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "missing or invalid token")
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rating, created, err := rc.ratings.Submit(ident, req.StoreID, req.Rating)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if created {
		resp.Created(c, rating)
		return
	}
	resp.OK(c, rating)
}

// GET /ratings/store/:id
func (rc *RatingController) ListForStore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid store id")
		return
	}
	items, err := rc.ratings.ListByStore(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /ratings/user/:id — admin or the user themself.
func (rc *RatingController) ListForUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	ident, _ := utils.CurrentIdentity(c)

	items, err := rc.ratings.ListByUser(ident, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// DELETE /ratings/:id — admin or the rating's author.
func (rc *RatingController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid rating id")
		return
	}
	ident, _ := utils.CurrentIdentity(c)

	if err := rc.ratings.Remove(ident, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "rating deleted successfully"})
}
