package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oyasar/staffdir/internal/model"
)

var (
	sampleFirstNames = []string{
		"Ahmet", "Ayşe", "Mehmet", "Elif", "Mustafa", "Zeynep", "Emre", "Selin",
		"Burak", "Deniz", "Cem", "Merve", "Kerem", "Ece", "Onur", "İrem",
	}
	sampleLastNames = []string{
		"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Arslan", "Doğan", "Koç",
		"Aydın", "Özdemir", "Erdoğan", "Güneş",
	}
)

const sampleCount = 50

// LoadSampleData seeds the store with generated employees when the
// collection is empty on first run. The set is sorted by employment
// date, newest first, before it is written.
func (s *Employee) LoadSampleData(ctx context.Context, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	now := s.now()

	employees := make([]model.Employee, 0, sampleCount)
	for i := 0; i < sampleCount; i++ {
		firstName := sampleFirstNames[rng.Intn(len(sampleFirstNames))]
		lastName := sampleLastNames[rng.Intn(len(sampleLastNames))]

		birthDate := randomDate(rng,
			time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC))
		employmentDate := randomDate(rng,
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), now)

		createdAt := randomInstant(rng, employmentDate, now)

		employees = append(employees, model.Employee{
			ID:               uuid.New(),
			FirstName:        firstName,
			LastName:         lastName,
			DateOfEmployment: employmentDate.Format(model.DateLayout),
			DateOfBirth:      birthDate.Format(model.DateLayout),
			PhoneNumber:      samplePhone(rng, i),
			Email:            sampleEmail(firstName, lastName, i),
			Department:       model.Departments()[rng.Intn(len(model.Departments()))],
			Position:         model.Positions()[rng.Intn(len(model.Positions()))],
			CreatedAt:        createdAt,
			UpdatedAt:        randomInstant(rng, createdAt, now),
		})
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].DateOfEmployment > employees[j].DateOfEmployment
	})

	if err := s.store.Apply(ctx, model.StatePatch{Employees: &employees}); err != nil {
		return fmt.Errorf("failed to load sample data: %w", err)
	}

	s.logger.Info("sample data loaded", "count", len(employees))
	return nil
}

// samplePhone produces a unique twelve-digit number in the stored
// format; the running index keeps the last digits distinct.
func samplePhone(rng *rand.Rand, i int) string {
	return fmt.Sprintf("+(90) 5%02d %03d %02d %02d", rng.Intn(100), rng.Intn(1000), i/100, i%100)
}

// sampleEmail derives a unique ASCII address from the generated name.
func sampleEmail(firstName, lastName string, i int) string {
	local := strings.ToLower(asciiFold(firstName) + "." + asciiFold(lastName))
	return fmt.Sprintf("%s%d@sourtimes.org", local, i)
}

func randomDate(rng *rand.Rand, from, to time.Time) time.Time {
	return randomInstant(rng, from, to).Truncate(24 * time.Hour)
}

func randomInstant(rng *rand.Rand, from, to time.Time) time.Time {
	if !to.After(from) {
		return from
	}
	delta := to.Unix() - from.Unix()
	return time.Unix(from.Unix()+rng.Int63n(delta), 0).UTC()
}

var asciiFoldReplacer = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "C", "Ğ", "G", "İ", "I", "Ö", "O", "Ş", "S", "Ü", "U",
)

func asciiFold(s string) string {
	return asciiFoldReplacer.Replace(s)
}
