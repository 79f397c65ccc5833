package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignUp is idempotent per email: a known email answers 200 with its id.
func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, created, err := h.catalog(c).SignUp(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User already exists", "userId": id})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Sign up successful", "userId": id})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.catalog(c).Users(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

func (h *Handler) IsAdmin(c *gin.Context) {
	ok, err := h.catalog(c).IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": ok})
}

type roleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req roleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.catalog(c).SetRole(c.Request.Context(), id, req.Role); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User role updated successfully"})
}
