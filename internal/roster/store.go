// Package roster owns the process-wide mutable state: the student roster,
// the trainer staff, the live session list and the read-only exercise
// library. State is seeded once at startup and lives only in memory.
//
// One mutex serializes every write, and reads hand out deep copies, so a
// derived computation (rhythm, status ages) always sees a single consistent
// snapshot and never a half-applied update.
package roster

import (
	"sync"

	"alcyxob/gym-frontdesk/internal/domain"
)

// StoreError distinguishes store-level failures.
type StoreError string

func (e StoreError) Error() string { return string(e) }

var (
	ErrStudentNotFound = StoreError("student not found")
	ErrTrainerNotFound = StoreError("trainer not found")
	ErrSessionNotFound = StoreError("session not found")
)

// Store is the single source of truth for roster state. All mutations must
// go through the session lifecycle manager or the roster mutation engine;
// no other component writes here.
type Store struct {
	mu       sync.Mutex
	students []domain.Student
	trainers []domain.Trainer
	sessions []domain.ActiveSession
	library  []domain.LibraryExercise

	nextStudentID int64
	nextPlanID    int64
}

// New builds a store from seed data. ID counters start above the highest
// seeded id so generated ids never collide with seeded ones.
func New(trainers []domain.Trainer, library []domain.LibraryExercise, students []domain.Student) *Store {
	s := &Store{
		trainers: trainers,
		library:  library,
		students: students,
	}
	for _, st := range students {
		if st.ID >= s.nextStudentID {
			s.nextStudentID = st.ID + 1
		}
		for _, p := range st.Plans {
			if p.ID >= s.nextPlanID {
				s.nextPlanID = p.ID + 1
			}
		}
	}
	return s
}

// NextStudentID hands out a fresh student id.
func (s *Store) NextStudentID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextStudentID
	s.nextStudentID++
	return id
}

// NextPlanID hands out a fresh plan id.
func (s *Store) NextPlanID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextPlanID
	s.nextPlanID++
	return id
}

// Students returns a deep copy of the student roster.
func (s *Store) Students() []domain.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneStudents(s.students)
}

// Trainers returns a deep copy of the trainer staff.
func (s *Store) Trainers() []domain.Trainer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Trainer, len(s.trainers))
	for i, t := range s.trainers {
		out[i] = t.Clone()
	}
	return out
}

// Sessions returns a deep copy of the live session list.
func (s *Store) Sessions() []domain.ActiveSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSessions(s.sessions)
}

// Library returns the exercise catalog. The catalog is immutable, but a copy
// of the slice header keeps callers from reordering the store's view.
func (s *Store) Library() []domain.LibraryExercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LibraryExercise(nil), s.library...)
}

// Snapshot returns students and sessions copied under one lock acquisition,
// so the two collections are mutually consistent.
func (s *Store) Snapshot() ([]domain.Student, []domain.ActiveSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneStudents(s.students), cloneSessions(s.sessions)
}

// StudentByID returns a deep copy of one student.
func (s *Store) StudentByID(id int64) (domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].ID == id {
			return s.students[i].Clone(), nil
		}
	}
	return domain.Student{}, ErrStudentNotFound
}

// TrainerByID returns a deep copy of one trainer.
func (s *Store) TrainerByID(id int64) (domain.Trainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trainers {
		if s.trainers[i].ID == id {
			return s.trainers[i].Clone(), nil
		}
	}
	return domain.Trainer{}, ErrTrainerNotFound
}

// SessionByStudent returns a deep copy of the student's active session.
func (s *Store) SessionByStudent(studentID int64) (domain.ActiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].StudentID == studentID {
			return s.sessions[i].Clone(), nil
		}
	}
	return domain.ActiveSession{}, ErrSessionNotFound
}

// UpdateStudent applies fn to the stored student under the lock. fn receives
// the live record; the whole update is one atomic step.
func (s *Store) UpdateStudent(id int64, fn func(*domain.Student)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].ID == id {
			fn(&s.students[i])
			return nil
		}
	}
	return ErrStudentNotFound
}

// UpdateTrainer applies fn to the stored trainer under the lock.
func (s *Store) UpdateTrainer(id int64, fn func(*domain.Trainer)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trainers {
		if s.trainers[i].ID == id {
			fn(&s.trainers[i])
			return nil
		}
	}
	return ErrTrainerNotFound
}

// UpdateSession applies fn to the student's stored session under the lock.
func (s *Store) UpdateSession(studentID int64, fn func(*domain.ActiveSession)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].StudentID == studentID {
			fn(&s.sessions[i])
			return nil
		}
	}
	return ErrSessionNotFound
}

// ReplaceSession installs the session for its student, dropping any prior
// session for the same student first (last write wins).
func (s *Store) ReplaceSession(session domain.ActiveSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.sessions[:0]
	for _, existing := range s.sessions {
		if existing.StudentID != session.StudentID {
			kept = append(kept, existing)
		}
	}
	s.sessions = append(kept, session)
}

// RemoveSession drops the student's session, if any.
func (s *Store) RemoveSession(studentID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.sessions[:0]
	for _, existing := range s.sessions {
		if existing.StudentID != studentID {
			kept = append(kept, existing)
		}
	}
	s.sessions = kept
}

// AppendStudents merges new students into the roster, skipping any whose id
// collides with an existing student. Returns how many were added.
func (s *Store) AppendStudents(students []domain.Student) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := make(map[int64]struct{}, len(s.students))
	for _, st := range s.students {
		existing[st.ID] = struct{}{}
	}
	added := 0
	for _, st := range students {
		if _, ok := existing[st.ID]; ok {
			continue
		}
		existing[st.ID] = struct{}{}
		s.students = append(s.students, st)
		added++
	}
	return added
}

func cloneStudents(students []domain.Student) []domain.Student {
	out := make([]domain.Student, len(students))
	for i, st := range students {
		out[i] = st.Clone()
	}
	return out
}

func cloneSessions(sessions []domain.ActiveSession) []domain.ActiveSession {
	out := make([]domain.ActiveSession, len(sessions))
	for i, sess := range sessions {
		out[i] = sess.Clone()
	}
	return out
}
