package handlers

import (
	"encoding/json"
	"testing"
	"time"
)

var importNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestDecodeProductRowsShapes(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
	}{
		{"bare array", `[{"name":"Kopi"},{"name":"Teh"}]`, 2},
		{"products envelope", `{"products":[{"name":"Kopi"}]}`, 1},
		{"snapshot envelope", `{"data":{"products":[{"name":"Kopi"},{"name":"Teh"},{"name":"Roti"}]}}`, 3},
		{"empty envelope", `{"orders":[]}`, 0},
	}
	for _, tc := range cases {
		rows, err := decodeProductRows([]byte(tc.payload))
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if len(rows) != tc.want {
			t.Errorf("%s: len = %d, want %d", tc.name, len(rows), tc.want)
		}
	}

	if _, err := decodeProductRows([]byte("not json")); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestProductFromImportRow(t *testing.T) {
	raw := json.RawMessage(`{"name":" Kopi Susu ","price":15000,"stock":7,"category":"drinks"}`)

	product, err := productFromImportRow(raw, importNow)
	if err != nil {
		t.Fatal(err)
	}
	if product.Name != "Kopi Susu" {
		t.Errorf("Name = %q, want trimmed", product.Name)
	}
	if product.Price != 15000 || product.Stock != 7 {
		t.Errorf("product = %+v", product)
	}
	if !product.TrackStock {
		t.Error("TrackStock must default to true")
	}
	if !product.CreatedAt.Equal(importNow) {
		t.Errorf("CreatedAt = %v, want %v", product.CreatedAt, importNow)
	}
}

func TestProductFromImportRowDefaults(t *testing.T) {
	raw := json.RawMessage(`{"name":"Teh","price":5000,"trackStock":false}`)

	product, err := productFromImportRow(raw, importNow)
	if err != nil {
		t.Fatal(err)
	}
	if product.Stock != 0 {
		t.Errorf("Stock = %d, want default 0", product.Stock)
	}
	if product.TrackStock {
		t.Error("explicit trackStock=false must be honored")
	}
}

func TestProductFromImportRowRejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing name", `{"price":5000}`},
		{"blank name", `{"name":"  ","price":5000}`},
		{"numeric name", `{"name":42,"price":5000}`},
		{"missing price", `{"name":"Kopi"}`},
		{"zero price", `{"name":"Kopi","price":0}`},
		{"negative price", `{"name":"Kopi","price":-1}`},
		{"string price", `{"name":"Kopi","price":"5000"}`},
		{"not an object", `"Kopi"`},
	}
	for _, tc := range cases {
		if _, err := productFromImportRow(json.RawMessage(tc.raw), importNow); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestProductFromImportRowIgnoresNegativeStock(t *testing.T) {
	raw := json.RawMessage(`{"name":"Kopi","price":5000,"stock":-3}`)

	product, err := productFromImportRow(raw, importNow)
	if err != nil {
		t.Fatal(err)
	}
	if product.Stock != 0 {
		t.Errorf("Stock = %d, want 0 for negative input", product.Stock)
	}
}
