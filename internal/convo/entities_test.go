package convo

import "testing"

func TestExtractEntitiesBookingReference(t *testing.T) {
	entities := ExtractEntities("please track jh20251234 for me")
	if entities["booking_id"] != "JH20251234" {
		t.Fatalf("booking_id = %q, want JH20251234", entities["booking_id"])
	}
}

func TestExtractEntitiesPhoneAndEmail(t *testing.T) {
	entities := ExtractEntities("reach me at 9876543210 or traveler@example.com")
	if entities["phone_number"] != "9876543210" {
		t.Errorf("phone_number = %q", entities["phone_number"])
	}
	if entities["email"] != "traveler@example.com" {
		t.Errorf("email = %q", entities["email"])
	}
}

func TestExtractEntitiesPhoneWithPrefix(t *testing.T) {
	entities := ExtractEntities("call +91 9876543210 tomorrow")
	if entities["phone_number"] != "+91 9876543210" {
		t.Errorf("phone_number = %q", entities["phone_number"])
	}
}

func TestExtractEntitiesAmount(t *testing.T) {
	for _, text := range []string{"I paid ₹2,499 already", "charged rs. 2,499 twice", "paid 2499 rupees"} {
		entities := ExtractEntities(text)
		if entities["amount"] == "" {
			t.Errorf("ExtractEntities(%q) found no amount", text)
		}
	}
}

func TestExtractEntitiesNothing(t *testing.T) {
	entities := ExtractEntities("just saying hello")
	if len(entities) != 0 {
		t.Fatalf("expected no entities, got %v", entities)
	}
}
