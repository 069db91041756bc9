package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-console/internal/catalog"
)

func TestPayloadCreateNormalizes(t *testing.T) {
	d := NewCreateDraft()
	d.Name = "Milk"
	d.CategoryID = "2"
	d.Quantity = "10"
	d.Unit = "litre"
	d.Price = "40.00"

	p := d.Payload(ModeCreate)

	assert.Equal(t, "Milk", p.Name)
	assert.Equal(t, uint(2), p.CategoryID)
	assert.Equal(t, 10, p.Quantity)
	assert.Equal(t, 40.0, p.Price)
	assert.Equal(t, catalog.UnitLitres, p.Unit)
	require.NotNil(t, p.Discount)
	assert.Equal(t, 0.0, *p.Discount)
	require.NotNil(t, p.MinStockLevel)
	assert.Equal(t, 10, *p.MinStockLevel)
	require.NotNil(t, p.ReorderQuantity)
	assert.Equal(t, 20, *p.ReorderQuantity)
	assert.Nil(t, p.ExpiryDate, "empty expiry date is omitted")
}

func TestPayloadCreateEmptyNumericsFallBack(t *testing.T) {
	d := NewCreateDraft()
	d.Name = "Salt"
	d.CategoryID = "1"
	d.Quantity = ""
	d.Price = ""
	d.MinStockLevel = ""
	d.ReorderQuantity = ""

	p := d.Payload(ModeCreate)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, 10, *p.MinStockLevel)
	assert.Equal(t, 20, *p.ReorderQuantity)
}

func TestPayloadCreateClampsUnit(t *testing.T) {
	d := NewCreateDraft()
	d.Unit = "bottle"
	assert.Equal(t, catalog.UnitPieces, d.Payload(ModeCreate).Unit)
}

func TestPayloadCreateJSONBody(t *testing.T) {
	d := NewCreateDraft()
	d.Name = "Milk"
	d.CategoryID = "2"
	d.Quantity = "10"
	d.Unit = "litre"
	d.Price = "40.00"

	body, err := json.Marshal(d.Payload(ModeCreate))
	require.NoError(t, err)

	// integers stay integers on the wire
	assert.Contains(t, string(body), `"quantity":10`)
	assert.Contains(t, string(body), `"price":40`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, float64(10), decoded["quantity"])
	assert.Equal(t, float64(40), decoded["price"])
	assert.Equal(t, "litre", decoded["unit"])
	assert.Nil(t, decoded["expiry_date"])
}

func TestPayloadEditSendsNullForEmptyOptionals(t *testing.T) {
	d := validEditDraft()
	d.Discount = ""
	d.MinStockLevel = ""
	d.ReorderQuantity = ""

	p := d.Payload(ModeEdit)
	assert.Equal(t, 5, p.Quantity)
	assert.Equal(t, 20.0, p.Price)
	assert.Nil(t, p.Discount)
	assert.Nil(t, p.MinStockLevel)
	assert.Nil(t, p.ReorderQuantity)
}

func TestPayloadEditKeepsOptionals(t *testing.T) {
	d := validEditDraft()
	d.ExpiryDate = "2030-01-01"

	p := d.Payload(ModeEdit)
	require.NotNil(t, p.Discount)
	assert.Equal(t, 10.0, *p.Discount)
	require.NotNil(t, p.ExpiryDate)
	assert.Equal(t, "2030-01-01", *p.ExpiryDate)
}
