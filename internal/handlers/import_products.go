package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"jennamart/internal/models"
	"jennamart/internal/storage"
)

// importEnvelope matches the wrapped shapes a product file can come in:
// {"products": [...]} or a full snapshot {"data": {"products": [...]}}.
// A bare array is tried first.
type importEnvelope struct {
	Products []json.RawMessage `json:"products"`
	Data     struct {
		Products []json.RawMessage `json:"products"`
	} `json:"data"`
}

type importProductRow struct {
	Name        interface{} `json:"name"`
	Price       interface{} `json:"price"`
	Stock       interface{} `json:"stock"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	TrackStock  *bool       `json:"trackStock"`
}

// ImportProducts loads products from an uploaded JSON file. Rows are
// validated one by one; bad rows are skipped and reported, good rows are
// inserted in a single batch.
func ImportProducts(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)

	return func(c *gin.Context) {
		const route = "POST /import/products"
		defer handlePanic(c, route)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "file is required")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "could not read uploaded file")
			return
		}
		defer file.Close()

		payload, err := io.ReadAll(file)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "could not read uploaded file")
			return
		}

		rows, err := decodeProductRows(payload)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if len(rows) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no products found in file")
			return
		}

		now := time.Now()
		valid := make([]models.Product, 0, len(rows))
		importErrors := []string{}
		for i, raw := range rows {
			product, err := productFromImportRow(raw, now)
			if err != nil {
				importErrors = append(importErrors, fmt.Sprintf("row %d: %v", i+1, err))
				continue
			}
			valid = append(valid, product)
		}

		imported := 0
		if len(valid) > 0 {
			ctx, cancel := requestContext(c)
			defer cancel()

			inserted, err := products.InsertMany(ctx, valid)
			if err != nil {
				log.Println("ImportProducts insert error:", err)
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			imported = inserted
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  imported > 0,
			"message":  fmt.Sprintf("Imported %d products, skipped %d", imported, len(importErrors)),
			"imported": imported,
			"skipped":  len(importErrors),
			"errors":   importErrors,
		})
	}
}

func decodeProductRows(payload []byte) ([]json.RawMessage, error) {
	var bare []json.RawMessage
	if err := json.Unmarshal(payload, &bare); err == nil {
		return bare, nil
	}

	var envelope importEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON file")
	}
	if len(envelope.Products) > 0 {
		return envelope.Products, nil
	}
	return envelope.Data.Products, nil
}

func productFromImportRow(raw json.RawMessage, now time.Time) (models.Product, error) {
	var row importProductRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return models.Product{}, fmt.Errorf("not an object")
	}

	name, ok := row.Name.(string)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return models.Product{}, fmt.Errorf("name is required")
	}

	price, ok := row.Price.(float64)
	if !ok || price <= 0 {
		return models.Product{}, fmt.Errorf("price must be a positive number")
	}

	stock := 0
	if s, ok := row.Stock.(float64); ok && s >= 0 {
		stock = int(s)
	}

	trackStock := true
	if row.TrackStock != nil {
		trackStock = *row.TrackStock
	}

	return models.Product{
		Name:        name,
		Price:       price,
		Stock:       stock,
		Category:    strings.TrimSpace(row.Category),
		Description: strings.TrimSpace(row.Description),
		TrackStock:  trackStock,
		CreatedAt:   now,
	}, nil
}
