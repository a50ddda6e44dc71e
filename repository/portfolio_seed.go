package repository

import (
	"time"

	"smokyhost/domain"
)

func seedMetrics() []domain.Metric {
	return []domain.Metric{
		{Label: "Occupancy Rate", Value: "68%", Change: 4.2, Trend: domain.TrendUp, Description: "How full your cabins are."},
		{Label: "RevPAR", Value: "$182", Change: 12.5, Trend: domain.TrendUp, Description: "Revenue per available room."},
		{Label: "Active Guests", Value: "14", Change: -2, Trend: domain.TrendDown, Description: "Guests currently checked in."},
		{Label: "Est. Monthly Revenue", Value: "$24,500", Change: 8.1, Trend: domain.TrendUp, Description: "Forecasted income."},
	}
}

func seedProperties() []domain.Property {
	return []domain.Property{
		{ID: "1", Name: "Bear Hug Cabin", Address: "123 Pine Ridge", Status: domain.PropertyActive, OccupancyRate: 85, NextCheckIn: "Today", ImageURL: "https://picsum.photos/400/300?random=1"},
		{ID: "2", Name: "Smoky Retreat", Address: "456 Mountain View", Status: domain.PropertyCleaning, OccupancyRate: 45, NextCheckIn: "Tomorrow", ImageURL: "https://picsum.photos/400/300?random=2"},
		{ID: "3", Name: "Dollywood Haven", Address: "789 Parkway Ln", Status: domain.PropertyActive, OccupancyRate: 92, NextCheckIn: "In 2 days", ImageURL: "https://picsum.photos/400/300?random=3"},
	}
}

func seedPricing() []domain.PricingDay {
	return []domain.PricingDay{
		{Date: "Mon 10/21", Price: 225, Occupancy: 45},
		{Date: "Tue 10/22", Price: 210, Occupancy: 40},
		{Date: "Wed 10/23", Price: 210, Occupancy: 50},
		{Date: "Thu 10/24", Price: 245, Occupancy: 65},
		{Date: "Fri 10/25", Price: 350, Occupancy: 90, Event: "Fall Festival"},
		{Date: "Sat 10/26", Price: 380, Occupancy: 95, Event: "Dollywood Peak"},
		{Date: "Sun 10/27", Price: 290, Occupancy: 75},
	}
}

func seedListing() domain.Listing {
	return domain.Listing{
		Property: domain.Property{
			ID:            "1",
			Name:          "Bear Hug Cabin - Luxury Views",
			Address:       "123 Pine Ridge, Pigeon Forge, TN",
			Status:        domain.PropertyActive,
			OccupancyRate: 85,
			NextCheckIn:   "Today",
			ImageURL:      "https://picsum.photos/800/400",
		},
		Description: "Nice cabin with a view. Has a hot tub and kitchen. Good for families. Close to Dollywood.",
		Amenities:   []string{"Hot Tub", "Mountain View", "Game Room", "Fire Pit", "High-speed WiFi"},
	}
}

func seedTasks() []domain.OperationTask {
	due := func(day, hour int) time.Time {
		return time.Date(2023, time.October, day, hour, 0, 0, 0, time.UTC)
	}
	return []domain.OperationTask{
		{ID: "1", PropertyID: "1", PropertyName: "Bear Hug Cabin", TaskName: "Turnover Cleaning", Type: domain.TaskCleaning, Status: domain.TaskUnassigned, DueDate: due(24, 11), Priority: domain.PriorityHigh},
		{ID: "2", PropertyID: "2", PropertyName: "Smoky Retreat", TaskName: "Fix Loose Railing", Type: domain.TaskMaintenance, Status: domain.TaskScheduled, DueDate: due(25, 14), Assignee: "Tech Mike", Priority: domain.PriorityMedium},
		{ID: "3", PropertyID: "3", PropertyName: "Dollywood Haven", TaskName: "HVAC Filter Change", Type: domain.TaskMaintenance, Status: domain.TaskUnassigned, DueDate: due(26, 10), Priority: domain.PriorityLow},
		{ID: "4", PropertyID: "1", PropertyName: "Bear Hug Cabin", TaskName: "Hot Tub Chemical Check", Type: domain.TaskInspection, Status: domain.TaskUnassigned, DueDate: due(24, 10), Priority: domain.PriorityHigh},
	}
}

func seedDevices(now time.Time) []domain.SmartDevice {
	return []domain.SmartDevice{
		{ID: "d1", PropertyID: "1", Type: domain.DeviceThermostat, Name: "Living Room Nest", Status: domain.DeviceOnline, Value: "72°F", BatteryLevel: 90, LastUpdate: now},
		{ID: "d2", PropertyID: "1", Type: domain.DeviceLock, Name: "Front Door Yale", Status: domain.DeviceOnline, Value: "Locked", BatteryLevel: 45, LastUpdate: now},
		{ID: "d3", PropertyID: "2", Type: domain.DeviceLeakSensor, Name: "Basement Water", Status: domain.DeviceAlert, Value: "Moisture Detected", BatteryLevel: 88, LastUpdate: now},
		{ID: "d4", PropertyID: "3", Type: domain.DeviceThermostat, Name: "Main Floor EcoBee", Status: domain.DeviceOffline, Value: "--", BatteryLevel: 0, LastUpdate: now.Add(-24 * time.Hour)},
	}
}

func seedChats() []domain.Chat {
	return []domain.Chat{
		{
			ID: "1", GuestName: "Sarah Miller", Property: "Bear Hug Cabin", LastMsg: "Is early check-in available?",
			Context: "The guest is asking about early check-in and dinner recommendations. Early check-in depends on cleaning status. Recommend 'The Old Mill' and 'Local Goat' for dinner.",
		},
		{
			ID: "2", GuestName: "John Doe", Property: "Smoky Retreat", LastMsg: "We loved the hot tub!",
			Context: "The guest checked out and is leaving positive feedback. Thank them and invite them to leave a review.",
		},
		{
			ID: "3", GuestName: "Emily Blunt", Property: "Dollywood Haven", LastMsg: "How far is the grocery store?",
			Context: "The nearest grocery store is about 10 minutes away by car on the Parkway.",
		},
	}
}

func seedMessages(now time.Time) map[string][]domain.ChatMessage {
	return map[string][]domain.ChatMessage{
		"1": {
			{ID: "1", Sender: domain.SenderGuest, Text: "Hi, we are arriving a bit early. Is it possible to check in around 2 PM instead of 4 PM?", Timestamp: now.Add(-time.Hour)},
			{ID: "2", Sender: domain.SenderAI, Text: "Hi Sarah! Thanks for reaching out. Let me check with our cleaning team to see if the cabin will be ready. I will get back to you within an hour.", Timestamp: now.Add(-3500 * time.Second)},
			{ID: "3", Sender: domain.SenderGuest, Text: "That would be great, thank you! Also, do you have any recommendations for dinner nearby?", Timestamp: now.Add(-30 * time.Minute)},
		},
		"2": {
			{ID: "1", Sender: domain.SenderGuest, Text: "We loved the hot tub!", Timestamp: now.Add(-2 * time.Hour)},
		},
		"3": {
			{ID: "1", Sender: domain.SenderGuest, Text: "How far is the grocery store?", Timestamp: now.Add(-15 * time.Minute)},
		},
	}
}
