package request

import (
	"encoding/json"
	"testing"
)

func TestPackItemRequestToEntity(t *testing.T) {
	t.Run("numeric json values pass through", func(t *testing.T) {
		var r PackItemRequest
		if err := json.Unmarshal([]byte(`{"name":"Cement bag","quantity":2,"unit_price":40.5}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		item := r.ToEntity()
		if item.Quantity != 2 || item.UnitPrice != 40.5 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("string numbers coerce", func(t *testing.T) {
		var r PackItemRequest
		if err := json.Unmarshal([]byte(`{"name":"Sand","quantity":"3","unit_price":"12.5"}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		item := r.ToEntity()
		if item.Quantity != 3 || item.UnitPrice != 12.5 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("garbage degrades to zero", func(t *testing.T) {
		var r PackItemRequest
		if err := json.Unmarshal([]byte(`{"name":"Bricks","quantity":"x","unit_price":null}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		item := r.ToEntity()
		if item.Quantity != 0 || item.UnitPrice != 0 {
			t.Fatalf("expected zeroed values, got %+v", item)
		}
	})
}

func TestCreatePackRequestToEntity(t *testing.T) {
	var r CreatePackRequest
	payload := `{"service_id":"serv-1","items":[{"name":"Cement bag","quantity":2,"unit_price":40},{"name":"Sand","quantity":"1","unit_price":"50"}]}`
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	pack := r.ToEntity()
	if pack.ServiceID != "serv-1" || len(pack.Items) != 2 {
		t.Fatalf("unexpected pack: %+v", pack)
	}
	if pack.Items[1].Quantity != 1 || pack.Items[1].UnitPrice != 50 {
		t.Fatalf("unexpected coerced item: %+v", pack.Items[1])
	}
}
