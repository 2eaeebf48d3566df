// Package convo implements the rule-driven assistant that answers visitor
// messages. It is deliberately stateless and free of I/O: the same text and
// entities always produce the same reply, which keeps the chat flow testable
// and lets callers persist messages around it however they like.
package convo

import (
	"fmt"
	"strings"
)

// Intent labels form a closed set; analytics and message metadata rely on
// these exact values.
const (
	IntentBookingTracking = "booking_tracking"
	IntentCancellation    = "cancellation"
	IntentModification    = "modification"
	IntentPayment         = "payment_inquiry"
	IntentPackage         = "package_inquiry"
	IntentEmergency       = "emergency_assistance"
	IntentSupport         = "customer_support"
	IntentGreeting        = "greeting"
	IntentGeneral         = "general_inquiry"
)

// Result is the assistant's full answer to one visitor message.
type Result struct {
	Reply        string
	Intent       string
	QuickReplies []string
}

// Quick-reply button groups shown under the bot reply.
var (
	quickBooking = []string{"Modify booking", "Download voucher", "Contact property", "Cancel booking"}
	quickPackage = []string{"View all packages", "Check availability", "Book now", "Compare prices"}
	quickPayment = []string{"Check refund status", "Payment methods", "Transaction history", "Contact finance"}
	quickDefault = []string{"Track booking", "View packages", "Customer support", "Emergency help"}
)

type rule struct {
	keywords     []string
	intent       string
	reply        string
	quickReplies []string
}

// rules are evaluated top-down; the first keyword hit wins. Order matters:
// "cancel my payment" is a cancellation, not a payment inquiry.
var rules = []rule{
	{
		keywords:     []string{"track", "status"},
		intent:       IntentBookingTracking,
		quickReplies: quickBooking,
		reply: "🔍 **Booking Tracking System**\n\nTo track your booking, please provide:\n" +
			"• **Booking ID** (Format: JH2025XXXX)\n• **Mobile Number** (Registered number)\n\n" +
			"📱 **Instant Tracking Options:**\n• Type booking ID here\n• SMS 'TRACK JH2025XXXX' to 56070\n" +
			"• Call 1800-123-TOUR\n• Visit jharkhandtourism.gov.in/track\n\n" +
			"💡 **Example**: Just type 'JH20251234' and I'll show your booking details instantly!",
	},
	{
		keywords:     []string{"cancel", "refund"},
		intent:       IntentCancellation,
		quickReplies: quickPayment,
		reply: "Cancellation & Refund Policy:\n\n📋 Free cancellation up to 48 hours before\n" +
			"💰 Refund processing: 5-7 business days\n📞 Need to cancel? Please share your booking ID\n\n" +
			"I can help process your cancellation right now!",
	},
	{
		keywords:     []string{"modify", "change"},
		intent:       IntentModification,
		quickReplies: quickBooking,
		reply: "🔄 **Booking Modification Center**\n\n📝 **What Can Be Changed:**\n" +
			"• Travel dates (subject to availability)\n• Guest count (+/- persons)\n" +
			"• Room category (upgrade/downgrade)\n• Meal preferences & special requests\n" +
			"• Add-on services (transport, guide)\n\n💰 **Modification Charges:**\n" +
			"• **FREE**: Changes 48+ hours before travel\n• **₹500 fee**: Changes 24-48 hours before\n" +
			"• **Limited options**: Changes <24 hours\n\n" +
			"🚀 **Ready to modify?** Share your booking ID (JH2025XXXX)!",
	},
	{
		keywords:     []string{"payment", "pay"},
		intent:       IntentPayment,
		quickReplies: quickPayment,
		reply: "Payment options available:\n\n💳 Credit/Debit Cards\n📱 UPI (GPay, PhonePe, Paytm)\n" +
			"🏦 Net Banking\n💰 Cash (on arrival)\n\n" +
			"Secure payment processing with instant confirmation. Need help with a payment issue?",
	},
	{
		keywords:     []string{"package", "tour"},
		intent:       IntentPackage,
		quickReplies: quickPackage,
		reply: "🌟 **Premium Tour Packages 2024-25**\n\n🏞️ **Weekend Getaways (2D/1N):**\n" +
			"• **Ranchi Explorer**: ₹3,500 - Hundru Falls + City tour\n" +
			"• **Netarhat Sunrise**: ₹4,200 - Hill station experience\n\n" +
			"🎭 **Cultural Heritage (3D/2N):**\n• **Deoghar Spiritual**: ₹6,800 - Temple circuit\n" +
			"• **Tribal Discovery**: ₹7,500 - Village experiences\n\n" +
			"🏔️ **Adventure Packages (4D/3N):**\n• **Parasnath Trek**: ₹9,200 - Highest peak\n" +
			"• **Wildlife Safari**: ₹8,900 - Hazaribagh + Betla\n\n" +
			"✨ **All Packages Include:**\n🏨 AC accommodation • 🍽️ All meals • 🚌 Transport\n" +
			"📸 Photography • 🛡️ Insurance • 📱 24/7 support\n\n" +
			"🎯 **Custom packages available!** Share your preferences and budget!",
	},
	{
		keywords:     []string{"emergency", "urgent"},
		intent:       IntentEmergency,
		quickReplies: quickDefault,
		reply: "🚨 **Emergency Tourism Assistance**\n\n📞 **Immediate Help Numbers:**\n" +
			"• **Tourist Emergency**: 1363 (24/7)\n• **Police**: 100 • **Medical**: 102\n" +
			"• **Fire**: 101 • **Disaster**: 108\n\n🏥 **Tourist Medical Centers:**\n" +
			"• **Ranchi**: RIMS Hospital (+91-651-2450014)\n• **Jamshedpur**: TMH (+91-657-2426016)\n" +
			"• **Dhanbad**: PMCH (+91-326-2305354)\n\n" +
			"📍 **Share your current location** and I'll direct you to the nearest help center!\n\n" +
			"What's your emergency situation? I'm here to help! 🚑",
	},
	{
		keywords:     []string{"support", "help"},
		intent:       IntentSupport,
		quickReplies: quickDefault,
		reply: "📞 **24/7 Customer Support Hub**\n\n🎧 **Instant Support Channels:**\n" +
			"• **Live Chat**: Right here with me! 💬\n• **Phone**: 1800-123-TOUR (Toll-free)\n" +
			"• **WhatsApp**: +91-9876543210\n\n🏢 **Regional Offices:**\n" +
			"• **Ranchi**: Tourism Bhawan, Main Road\n• **Jamshedpur**: JTDC Office, Bistupur\n" +
			"• **Dhanbad**: Station Road, Near Railway\n\n" +
			"🚨 **Emergency Support**: Available 24/7\n**Tourist Helpline**: 1363\n\n" +
			"What specific help do you need? 😊",
	},
	{
		keywords:     []string{"hello", "hi"},
		intent:       IntentGreeting,
		quickReplies: quickDefault,
		reply: "🙏 **Namaste! Welcome to Jharkhand Tourism Service Center!**\n\n" +
			"I'm your dedicated digital assistant, here to help you with:\n\n🎫 **Instant Services:**\n" +
			"• Real-time booking tracking & management\n• Payment processing & refund assistance\n" +
			"• 24/7 customer support chat\n• Tour package information & booking\n" +
			"• Emergency travel assistance\n\n🔥 **Try These Commands:**\n" +
			"• 'Track JH20251234' • 'Cancel booking'\n• 'Best packages' • 'Emergency help'\n\n" +
			"✨ **Ready to assist you 24/7!** What can I help you with today? 😊",
	},
}

var fallback = rule{
	intent:       IntentGeneral,
	quickReplies: quickDefault,
	reply: "🤖 **Jharkhand Tourism Assistant**\n\nI'm here to provide instant assistance with:\n\n" +
		"🎯 **Popular Services:**\n• 'Track my booking status'\n• 'Payment & refund help'\n" +
		"• 'Tour package information'\n• 'Customer support chat'\n• 'Cancel or modify booking'\n" +
		"• 'Emergency assistance'\n\n💬 **Smart Chat Features:**\n" +
		"• Type booking ID (JH2025XXXX) for instant tracking\n• Ask questions in Hindi or English\n" +
		"• Get real-time updates\n• Create support tickets\n\n" +
		"How can I make your Jharkhand tourism experience amazing today? 🏔️",
}

const bookingStatusTemplate = "📋 **Booking Status for %s:**\n\n✅ **Status**: CONFIRMED\n" +
	"📅 **Travel Date**: 15-20 Dec 2024\n🏨 **Property**: JTDC Heritage Resort, Ranchi\n" +
	"👥 **Guests**: 2 Adults\n💰 **Amount**: ₹8,500 (Fully Paid)\n\n📱 **Quick Actions:**\n" +
	"• Modify booking\n• Download voucher\n• Contact property: +91-9876543210\n• Cancel booking\n\n" +
	"📧 Confirmation sent to your registered email.\nNeed any changes to this booking?"

// Respond computes the assistant's answer to a visitor message. A booking
// reference in the extracted entities trumps every keyword rule: the visitor
// pasted a reference, so they want that booking, whatever else they typed.
func Respond(text string, entities map[string]string) Result {
	if ref, ok := entities["booking_id"]; ok && ref != "" {
		return Result{
			Reply:        fmt.Sprintf(bookingStatusTemplate, ref),
			Intent:       IntentBookingTracking,
			QuickReplies: quickBooking,
		}
	}

	msg := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return Result{Reply: r.reply, Intent: r.intent, QuickReplies: r.quickReplies}
			}
		}
	}

	return Result{Reply: fallback.reply, Intent: fallback.intent, QuickReplies: fallback.quickReplies}
}

// Intent classifies a message without building the full reply.
func Intent(text string) string {
	return Respond(text, nil).Intent
}
