package interfaces

import "github.com/RBaldassarre/worldaquatics-export/models"

// EventSelector picks one race event out of the candidates. The
// interactive build prompts on the terminal; tests supply a fixed
// choice.
type EventSelector interface {
	Select(events []models.RaceEvent) (models.RaceEvent, error)
}
