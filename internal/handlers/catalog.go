package handlers

import (
	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/store"
	"hospital-portal-server/internal/utils"
)

// CatalogHandler serves the reference catalog: specialties, doctors, time
// slots and medical packages. All endpoints are public; the booking UI loads
// them before authentication.
type CatalogHandler struct {
	Catalog *store.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *store.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// GetSpecialties lists every specialty.
func (h *CatalogHandler) GetSpecialties(c *gin.Context) {
	utils.Success(c, "Specialties fetched successfully", h.Catalog.Specialties())
}

// GetDoctors lists catalog doctors, optionally filtered by specialty.
func (h *CatalogHandler) GetDoctors(c *gin.Context) {
	if specialtyID := c.Query("specialtyId"); specialtyID != "" {
		utils.Success(c, "Doctors fetched successfully", h.Catalog.DoctorsBySpecialty(specialtyID))
		return
	}
	utils.Success(c, "Doctors fetched successfully", h.Catalog.Doctors())
}

// GetDoctorByID fetches one catalog doctor.
func (h *CatalogHandler) GetDoctorByID(c *gin.Context) {
	doctor, ok := h.Catalog.DoctorByID(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Doctor not found")
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor)
}

// GetTimeSlots lists the fixed time slot enumeration.
func (h *CatalogHandler) GetTimeSlots(c *gin.Context) {
	utils.Success(c, "Time slots fetched successfully", h.Catalog.TimeSlots())
}

// GetPackages lists medical packages, optionally filtered by specialty.
func (h *CatalogHandler) GetPackages(c *gin.Context) {
	if specialtyID := c.Query("specialtyId"); specialtyID != "" {
		utils.Success(c, "Packages fetched successfully", h.Catalog.PackagesBySpecialty(specialtyID))
		return
	}
	utils.Success(c, "Packages fetched successfully", h.Catalog.Packages())
}

// GetPackageByID fetches one medical package.
func (h *CatalogHandler) GetPackageByID(c *gin.Context) {
	pkg, ok := h.Catalog.PackageByID(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Package not found")
		return
	}
	utils.Success(c, "Package fetched successfully", pkg)
}
