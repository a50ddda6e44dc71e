package domain

import "time"

type TaskType string

const (
	TaskCleaning    TaskType = "Cleaning"
	TaskMaintenance TaskType = "Maintenance"
	TaskInspection  TaskType = "Inspection"
)

type TaskStatus string

const (
	TaskUnassigned TaskStatus = "Unassigned"
	TaskScheduled  TaskStatus = "Scheduled"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type OperationTask struct {
	ID           string     `json:"id"`
	PropertyID   string     `json:"property_id"`
	PropertyName string     `json:"property_name"`
	TaskName     string     `json:"task_name"`
	Type         TaskType   `json:"type"`
	Status       TaskStatus `json:"status"`
	DueDate      time.Time  `json:"due_date"`
	Assignee     string     `json:"assignee,omitempty"`
	Priority     Priority   `json:"priority"`
}

type DeviceType string

const (
	DeviceThermostat   DeviceType = "Thermostat"
	DeviceLock         DeviceType = "Lock"
	DeviceLeakSensor   DeviceType = "LeakSensor"
	DeviceNoiseMonitor DeviceType = "NoiseMonitor"
)

type DeviceStatus string

const (
	DeviceOnline  DeviceStatus = "Online"
	DeviceOffline DeviceStatus = "Offline"
	DeviceAlert   DeviceStatus = "Alert"
)

type SmartDevice struct {
	ID           string       `json:"id"`
	PropertyID   string       `json:"property_id"`
	Type         DeviceType   `json:"type"`
	Name         string       `json:"name"`
	Status       DeviceStatus `json:"status"`
	Value        string       `json:"value"`
	BatteryLevel int          `json:"battery_level"`
	LastUpdate   time.Time    `json:"last_update"`
}

type DeviceAlertInfo struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
	Reason   string `json:"reason"`
}

type ScheduleResult struct {
	Plan  Insight         `json:"plan"`
	Tasks []OperationTask `json:"tasks"`
}

type TelemetryReport struct {
	Devices []SmartDevice     `json:"devices"`
	Alerts  []DeviceAlertInfo `json:"alerts"`
	Summary Insight           `json:"summary"`
}
