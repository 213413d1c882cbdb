package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `60000`, 60000},
		{"decimal", `59999.5`, 59999.5},
		{"string number", `"60000"`, 60000},
		{"string decimal", `"59999.5"`, 59999.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n FlexNumber
			if err := json.Unmarshal([]byte(tc.raw), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(n) != tc.want {
				t.Fatalf("got %v, want %v", float64(n), tc.want)
			}
		})
	}

	t.Run("null leaves zero value", func(t *testing.T) {
		var n FlexNumber
		if err := json.Unmarshal([]byte(`null`), &n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if float64(n) != 0 {
			t.Fatalf("got %v, want 0", float64(n))
		}
	})

	t.Run("non-numeric string rejected", func(t *testing.T) {
		var n FlexNumber
		if err := json.Unmarshal([]byte(`"gratis"`), &n); err == nil {
			t.Fatal("expected error")
		}
	})
}

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		Items: []CheckoutItemRequest{
			{ProductID: " p-1 ", Name: " Camiseta ", Price: 60000, Quantity: 2, Size: "M"},
		},
		Customer: CheckoutCustomerRequest{FirstName: "Laura", LastName: "Gómez", Email: " laura@example.com ", Phone: "3001234567"},
		Shipping: CheckoutShippingRequest{CountryCode: "CO", DepartmentCode: "05", CityCode: "05001", Address: " Calle 10 "},
	}
}

func TestCheckoutRequest_ToInput(t *testing.T) {
	t.Run("normalizes and trims", func(t *testing.T) {
		input, err := validRequest().ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if input.Items[0].ProductID != "p-1" || input.Items[0].Name != "Camiseta" {
			t.Fatalf("items not trimmed: %+v", input.Items[0])
		}
		if input.Items[0].Price != 60000 || input.Items[0].Quantity != 2 {
			t.Fatalf("numeric conversion failed: %+v", input.Items[0])
		}
		if input.Customer.Email != "laura@example.com" {
			t.Fatalf("customer not trimmed: %+v", input.Customer)
		}
		if input.Shipping.Address != "Calle 10" {
			t.Fatalf("shipping not trimmed: %+v", input.Shipping)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		r := validRequest()
		r.Items[0].Price = -1
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidItemPrice) {
			t.Fatalf("expected ErrInvalidItemPrice, got %v", err)
		}
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		r := validRequest()
		r.Items[0].Quantity = 0
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidItemQuantity) {
			t.Fatalf("expected ErrInvalidItemQuantity, got %v", err)
		}
	})

	t.Run("fractional quantity truncates toward zero", func(t *testing.T) {
		r := validRequest()
		r.Items[0].Quantity = 2.9
		input, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if input.Items[0].Quantity != 2 {
			t.Fatalf("expected 2, got %d", input.Items[0].Quantity)
		}
	})
}
