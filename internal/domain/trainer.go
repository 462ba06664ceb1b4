package domain

// Role distinguishes trainer permissions.
type Role string

const (
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// TrainerStatus marks whether a trainer ("PEF") is currently on staff.
type TrainerStatus string

const (
	TrainerActive   TrainerStatus = "active"
	TrainerInactive TrainerStatus = "inactive"
)

// Trainer is a staff member. License is the professional license number
// (CREF); it is required unless the trainer is an intern.
type Trainer struct {
	ID         int64
	Name       string
	Intern     bool
	License    *string
	Roles      []Role
	Status     TrainerStatus
	NationalID string
}

// HasRole reports whether the trainer holds the given role.
func (t *Trainer) HasRole(role Role) bool {
	for _, r := range t.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the trainer.
func (t Trainer) Clone() Trainer {
	out := t
	if t.License != nil {
		l := *t.License
		out.License = &l
	}
	out.Roles = append([]Role(nil), t.Roles...)
	return out
}
