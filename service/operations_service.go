package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"smokyhost/domain"
	"smokyhost/repository"
)

const (
	cleaningAssignee    = "Cleaner A"
	maintenanceAssignee = "Tech Mike"
)

type OperationsService struct {
	repo repository.PortfolioRepository
	ai   *AIService
	log  zerolog.Logger
}

func NewOperationsService(repo repository.PortfolioRepository, ai *AIService, log zerolog.Logger) *OperationsService {
	return &OperationsService{repo: repo, ai: ai, log: log.With().Str("component", "operations").Logger()}
}

func (s *OperationsService) Tasks() []domain.OperationTask {
	return s.repo.Tasks()
}

// AutoSchedule assigns every unassigned task (cleanings to the cleaning
// crew, everything else to the handyman) and asks for a plan over the tasks
// it claimed. Concurrent calls never claim the same task twice.
func (s *OperationsService) AutoSchedule(ctx context.Context) domain.ScheduleResult {
	claimed := s.repo.AssignUnassigned(assigneeFor)

	plan := s.ai.GenerateSchedulePlan(ctx, claimed)

	s.log.Info().Int("assigned", len(claimed)).Msg("tasks auto-scheduled")

	return domain.ScheduleResult{
		Plan:  plan,
		Tasks: s.repo.Tasks(),
	}
}

func (s *OperationsService) Telemetry(ctx context.Context) domain.TelemetryReport {
	devices := s.repo.Devices()

	return domain.TelemetryReport{
		Devices: devices,
		Alerts:  DeviceAlerts(devices),
		Summary: s.ai.GenerateTelemetrySummary(ctx, devices),
	}
}

// DeviceAlerts lists the devices that need attention, one entry per reason.
func DeviceAlerts(devices []domain.SmartDevice) []domain.DeviceAlertInfo {
	alerts := []domain.DeviceAlertInfo{}

	for _, d := range devices {
		add := func(reason string) {
			alerts = append(alerts, domain.DeviceAlertInfo{DeviceID: d.ID, Name: d.Name, Reason: reason})
		}

		switch d.Status {
		case domain.DeviceAlert:
			add("alert: " + d.Value)
		case domain.DeviceOffline:
			add("offline")
		}

		if d.Type == domain.DeviceThermostat && d.Status != domain.DeviceOffline {
			if temp, ok := parseFahrenheit(d.Value); ok {
				if temp < ThermostatMinF {
					add(fmt.Sprintf("temperature %.0fF below %.0fF", temp, ThermostatMinF))
				} else if temp > ThermostatMaxF {
					add(fmt.Sprintf("temperature %.0fF above %.0fF", temp, ThermostatMaxF))
				}
			}
		}

		if d.Status != domain.DeviceOffline && d.BatteryLevel < LowBatteryPercent {
			add(fmt.Sprintf("battery %d%%", d.BatteryLevel))
		}
	}

	return alerts
}

func assigneeFor(t domain.TaskType) string {
	if t == domain.TaskCleaning {
		return cleaningAssignee
	}
	return maintenanceAssignee
}

// parseFahrenheit reads readings such as "72°F" or "72F".
func parseFahrenheit(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	v = strings.TrimSuffix(v, "F")
	v = strings.TrimSuffix(v, "°")
	v = strings.TrimSpace(v)

	temp, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return temp, true
}
