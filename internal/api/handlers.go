package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"boardscout/server/config"
	"boardscout/server/internal/auth"
	"boardscout/server/internal/database"
	"boardscout/server/internal/geo"
	"boardscout/server/internal/models"
	"boardscout/server/internal/queue"
	"boardscout/server/internal/resolver"
	"boardscout/server/internal/storage"
	"boardscout/server/internal/telegram"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type Handler struct {
	db              *database.Database
	logger          *logrus.Logger
	cfg             *config.Config
	resolver        *resolver.Resolver
	completer       *resolver.Completer
	synth           *resolver.Synth
	nearbyFinder    *geo.NearbyFinder
	uploader        storage.Uploader
	importQueue     *queue.BillboardQueue
	telegramService *telegram.Service
}

// ImportRequest is the body of POST /api/billboards/import.
type ImportRequest struct {
	Billboards []*models.Billboard `json:"billboards" binding:"required"`
}

func NewHandler(
	db *database.Database,
	cfg *config.Config,
	res *resolver.Resolver,
	completer *resolver.Completer,
	synth *resolver.Synth,
	uploader storage.Uploader,
	importQueue *queue.BillboardQueue,
	telegramService *telegram.Service,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:              db,
		logger:          logger,
		cfg:             cfg,
		resolver:        res,
		completer:       completer,
		synth:           synth,
		nearbyFinder:    geo.NewNearbyFinder(db, logger),
		uploader:        uploader,
		importQueue:     importQueue,
		telegramService: telegramService,
	}
}

// GetBillboards lists billboards, optionally narrowed by a search term over
// location and description.
func (h *Handler) GetBillboards(c *gin.Context) {
	search := c.Query("search")

	billboards, err := h.db.SearchBillboards(c.Request.Context(), search)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list billboards")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch billboards"})
		return
	}

	if len(billboards) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No billboards found"})
		return
	}

	for i := range billboards {
		billboards[i] = h.completer.Complete(billboards[i])
	}
	c.JSON(http.StatusOK, billboards)
}

// GetBillboardDetail resolves a single billboard from whatever identifier the
// client sent: a record key, a location fragment, or free text.
func (h *Handler) GetBillboardDetail(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("identifier"))

	billboard, err := h.resolver.Resolve(c.Request.Context(), identifier)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "billboard": billboard})
	case errors.Is(err, resolver.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Billboard not found"})
	default:
		h.logger.WithError(err).WithField("identifier", identifier).Error("Billboard lookup failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Billboard store unavailable"})
	}
}

// AddBillboard creates a listing from a multipart form submission, uploading
// any attached images first.
func (h *Handler) AddBillboard(c *gin.Context) {
	var input models.BillboardInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if input.Type != "" && !contains(models.BillboardTypes, input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Invalid billboard type, must be one of: %s", strings.Join(models.BillboardTypes, ", ")),
		})
		return
	}
	if input.PriceUnit != "" && !contains(models.PriceUnits, input.PriceUnit) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Invalid price unit, must be one of: %s", strings.Join(models.PriceUnits, ", ")),
		})
		return
	}

	features, err := parseStringArray(input.Features)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid features format"})
		return
	}
	attractions, err := parseStringArray(input.NearbyAttractions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid nearbyAttractions format"})
		return
	}

	images, err := h.uploadImages(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	billboard := models.Billboard{
		Location:  input.Location,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Price:     input.Price,
		PriceUnit: input.PriceUnit,
		Size: models.Size{
			Height: input.Height,
			Width:  input.Width,
			Unit:   input.Unit,
		},
		Views:             input.Views,
		DailyImpressions:  input.DailyImpressions,
		Available:         available,
		Type:              input.Type,
		FacingDirection:   input.FacingDirection,
		MinBookingDays:    input.MinBookingDays,
		Description:       input.Description,
		Images:            images,
		Features:          features,
		NearbyAttractions: attractions,
		Owner: models.Owner{
			Name:     input.OwnerName,
			Phone:    input.OwnerPhone,
			Email:    input.OwnerEmail,
			Response: input.OwnerResponse,
		},
	}

	// Persist the record fully populated so reads are stable
	billboard = h.completer.Complete(billboard)
	if billboard.Views == "" {
		billboard.Views, billboard.DailyImpressions = h.synth.Pair()
	}

	id, err := h.db.InsertBillboard(c.Request.Context(), &billboard)
	if err != nil {
		h.logger.WithError(err).Error("Failed to insert billboard")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create billboard"})
		return
	}
	billboard.ID = id

	if h.telegramService != nil {
		go func(b models.Billboard) {
			if err := h.telegramService.NotifyNewBillboard(&b); err != nil {
				h.logger.WithError(err).Error("Failed to send listing notification")
			}
		}(billboard)
	}

	h.logger.WithFields(logrus.Fields{
		"billboard_id": id,
		"location":     billboard.Location,
		"user_id":      c.GetInt64(auth.ContextUserID),
	}).Info("Billboard created")
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Billboard added successfully",
		"billboard": billboard,
	})
}

// uploadImages stores every attached image and returns their public URLs.
func (h *Handler) uploadImages(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain JSON submissions have no multipart body
		return []string{}, nil
	}

	files := form.File["images"]
	if len(files) > h.cfg.Storage.MaxImages {
		return nil, fmt.Errorf("too many images, maximum is %d", h.cfg.Storage.MaxImages)
	}

	maxSize := int64(h.cfg.Storage.MaxImageSizeMB) << 20
	urls := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > maxSize {
			return nil, fmt.Errorf("image %s exceeds the %dMB limit", file.Filename, h.cfg.Storage.MaxImageSizeMB)
		}
		contentType := file.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			return nil, fmt.Errorf("image %s has unsupported type %s", file.Filename, contentType)
		}

		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to read image %s", file.Filename)
		}
		url, err := h.uploader.Upload(c.Request.Context(), file.Filename, contentType, src)
		src.Close()
		if err != nil {
			h.logger.WithError(err).WithField("filename", file.Filename).Error("Image upload failed")
			return nil, fmt.Errorf("failed to store image %s", file.Filename)
		}
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls, nil
}

// ImportBillboards accepts a batch of listings and queues them for
// asynchronous processing.
func (h *Handler) ImportBillboards(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if len(req.Billboards) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No billboards to import"})
		return
	}
	if len(req.Billboards) > h.cfg.BatchImport.MaxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Batch too large, maximum is %d", h.cfg.BatchImport.MaxBatchSize),
		})
		return
	}

	if err := h.importQueue.Push(req.Billboards); err != nil {
		h.logger.WithError(err).Error("Failed to queue import batch")
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Import queue unavailable"})
		return
	}

	h.logger.WithField("batch_size", len(req.Billboards)).Info("Import batch queued")
	c.JSON(http.StatusAccepted, gin.H{"success": true, "queued": len(req.Billboards)})
}

// GetNearbyBillboards lists other billboards within a radius of the one the
// identifier resolves to.
func (h *Handler) GetNearbyBillboards(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("identifier"))

	billboard, err := h.resolver.Resolve(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Billboard not found"})
		} else {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Billboard store unavailable"})
		}
		return
	}

	radiusKM := 5.0
	if raw := c.Query("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid radius_km"})
			return
		}
		radiusKM = parsed
	}

	nearby, err := h.nearbyFinder.FindNear(c.Request.Context(), billboard, radiusKM)
	if err != nil {
		h.logger.WithError(err).Error("Proximity search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to find nearby billboards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reference": billboard.ID,
		"radius_km": radiusKM,
		"count":     len(nearby),
		"data":      nearby,
	})
}

// GetMarkets lists the metropolitan markets the service curates.
func (h *Handler) GetMarkets(c *gin.Context) {
	c.JSON(http.StatusOK, config.SupportedMarkets)
}

// HealthCheck reports service liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseStringArray accepts either a JSON array or a comma-separated list.
func parseStringArray(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
