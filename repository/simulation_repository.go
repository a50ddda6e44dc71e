package repository

import "smokyhost/domain"

type SimulationRepository interface {
	Save(record domain.SimulationRecord) error
	List() ([]domain.SimulationRecord, error)
}
