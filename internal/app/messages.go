package app

import "time"

// TickMsg triggers a simulation step and frame update.
type TickMsg time.Time
