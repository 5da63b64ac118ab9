package http

import (
	"net/http"
	"strconv"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (r *Router) listContacts(c *gin.Context) {
	principal := middleware.Principal(c)
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	contacts, err := r.contacts.List(c.Request.Context(), principal.ID, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (r *Router) createContact(c *gin.Context) {
	principal := middleware.Principal(c)
	var body dto.ContactDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := r.contacts.Create(c.Request.Context(), principal.ID, body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (r *Router) getContact(c *gin.Context) {
	principal := middleware.Principal(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	contact, err := r.contacts.Get(c.Request.Context(), principal.ID, id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (r *Router) updateContact(c *gin.Context) {
	principal := middleware.Principal(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}
	var body dto.ContactDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := r.contacts.Update(c.Request.Context(), principal.ID, id, body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (r *Router) deleteContact(c *gin.Context) {
	principal := middleware.Principal(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	if err := r.contacts.Delete(c.Request.Context(), principal.ID, id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}

func (r *Router) searchContacts(c *gin.Context) {
	principal := middleware.Principal(c)

	contacts, err := r.contacts.Search(c.Request.Context(), principal.ID,
		c.Query("first_name"), c.Query("last_name"), c.Query("email"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (r *Router) birthdays(c *gin.Context) {
	principal := middleware.Principal(c)
	within, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	contacts, err := r.contacts.UpcomingBirthdays(c.Request.Context(), principal.ID, within)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}
