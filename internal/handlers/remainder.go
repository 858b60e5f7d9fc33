package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"remainder-service/internal/models"
	"remainder-service/internal/store"
	"remainder-service/internal/validation"
)

const storeTimeout = 5 * time.Second

func storeContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

// pathID parses the :id parameter. A malformed id is a 400, reported before
// any store lookup; only a well-formed id with no record is a 404.
func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid remainder ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

// listingFilter validates the query parameters shared by the list and
// upcoming routes and enforces the email-or-phone requirement.
func listingFilter(c *gin.Context) (validation.QueryParams, bool) {
	params, errs := validation.ParseQuery(validation.QueryValues{
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  c.Query("page"),
		Limit: c.Query("limit"),
	})
	if len(errs) > 0 {
		respondFieldErrors(c, errs)
		return validation.QueryParams{}, false
	}
	if params.Email == "" && params.Phone == "" {
		respondError(c, http.StatusBadRequest, "Email or phone number is required")
		return validation.QueryParams{}, false
	}
	return params, true
}

// POST /api/remainders
func CreateRemainder(remainders store.RemainderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/remainders"

		var input models.RemainderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := validation.ValidateInput(&input); len(errs) > 0 {
			respondFieldErrors(c, errs)
			return
		}

		record, err := input.Record()
		if err != nil {
			respondFieldErrors(c, []validation.FieldError{{Field: "date", Message: "Please enter a valid date"}})
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		created, err := remainders.Insert(ctx, record)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Remainder created successfully",
			"data":    created,
		})
	}
}

// GET /api/remainders?email=&phone=&page=&limit=
func GetRemainders(remainders store.RemainderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/remainders"

		params, ok := listingFilter(c)
		if !ok {
			return
		}

		filter := store.Filter{Email: params.Email, Phone: params.Phone}
		skip := (params.Page - 1) * params.Limit

		ctx, cancel := storeContext(c)
		defer cancel()

		records, err := remainders.Find(ctx, filter, skip, params.Limit)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		total, err := remainders.Count(ctx, filter)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		totalPages := (total + params.Limit - 1) / params.Limit

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Remainders retrieved successfully",
			"data":    records,
			"pagination": gin.H{
				"currentPage": params.Page,
				"totalPages":  totalPages,
				"totalCount":  total,
				"hasNext":     skip+int64(len(records)) < total,
				"hasPrev":     params.Page > 1,
			},
		})
	}
}

// GET /api/remainders/upcoming?email=&phone=
func GetUpcomingRemainders(remainders store.RemainderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/remainders/upcoming"

		params, ok := listingFilter(c)
		if !ok {
			return
		}

		// Next seven days, both ends inclusive. Dates are stored at
		// midnight UTC so the bounds land exactly on calendar days.
		from := models.Today()
		to := from.AddDate(0, 0, 7)
		filter := store.Filter{
			Email:    params.Email,
			Phone:    params.Phone,
			DateFrom: &from,
			DateTo:   &to,
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		records, err := remainders.Find(ctx, filter, 0, 0)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Upcoming remainders retrieved successfully",
			"data":    records,
			"count":   len(records),
		})
	}
}

// GET /api/remainders/:id
func GetRemainder(remainders store.RemainderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/remainders/:id"

		id, ok := pathID(c)
		if !ok {
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		record, err := remainders.FindByID(ctx, id)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Remainder retrieved successfully",
			"data":    record,
		})
	}
}

// PUT /api/remainders/:id
func UpdateRemainder(remainders store.RemainderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/remainders/:id"

		id, ok := pathID(c)
		if !ok {
			return
		}

		var input models.RemainderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := validation.ValidateInput(&input); len(errs) > 0 {
			respondFieldErrors(c, errs)
			return
		}

		fields, err := input.Record()
		if err != nil {
			respondFieldErrors(c, []validation.FieldError{{Field: "date", Message: "Please enter a valid date"}})
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		updated, err := remainders.UpdateByID(ctx, id, fields)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Remainder updated successfully",
			"data":    updated,
		})
	}
}

// DELETE /api/remainders/:id
func DeleteRemainder(remainders store.RemainderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/remainders/:id"

		id, ok := pathID(c)
		if !ok {
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		deleted, err := remainders.DeleteByID(ctx, id)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Remainder deleted successfully",
			"data":    deleted,
		})
	}
}
