package schedule

import "strings"

// Roster holds the clinic's practitioners. The data is fixed at startup;
// there is no admin surface to change it.
type Roster struct {
	practitioners []Practitioner
}

func NewRoster(practitioners []Practitioner) *Roster {
	return &Roster{practitioners: practitioners}
}

// DefaultRoster is the clinic's current medical staff.
func DefaultRoster() *Roster {
	return NewRoster([]Practitioner{
		{
			ID:                "1",
			Name:              "Dra. Ana Carvalho",
			CRM:               "12345-PR",
			Bio:               "Especialista em ginecologia com mais de 15 anos de experiência. Formada pela USP com residência no Hospital das Clínicas. Atendimento humanizado e personalizado para cada paciente.",
			Specialties:       []Specialty{Gynecology},
			AvailableWeekdays: []int{1, 2, 4},
		},
		{
			ID:                "2",
			Name:              "Dr. Pedro Mendes",
			CRM:               "23456-PR",
			Bio:               "Especialista em obstetrícia de alto risco, com foco em gestações múltiplas. Formado pela UFPR com mais de 10 anos de experiência em acompanhamento pré-natal.",
			Specialties:       []Specialty{Obstetrics},
			AvailableWeekdays: []int{1, 3, 5},
		},
		{
			ID:                "3",
			Name:              "Dra. Marta Ribeiro",
			CRM:               "34567-PR",
			Bio:               "Dupla especialização em ginecologia e obstetrícia com pós-graduação em reprodução humana. Atua com foco em saúde da mulher em todas as fases da vida.",
			Specialties:       []Specialty{Gynecology, Obstetrics},
			AvailableWeekdays: []int{2, 3, 5},
		},
		{
			ID:                "4",
			Name:              "Dr. José Santos",
			CRM:               "45678-PR",
			Bio:               "Especialista em obstetrícia com foco em partos humanizados. Formado pela UNICAMP com residência no Hospital Albert Einstein. Defensor do protagonismo da mulher durante o parto.",
			Specialties:       []Specialty{Obstetrics},
			AvailableWeekdays: []int{1, 4, 5},
		},
		{
			ID:                "5",
			Name:              "Dra. Luísa Oliveira",
			CRM:               "56789-PR",
			Bio:               "Ginecologista especializada em saúde hormonal feminina. Mestre em endocrinologia ginecológica pela UFRJ. Atendimento integral com foco no bem-estar da mulher.",
			Specialties:       []Specialty{Gynecology},
			AvailableWeekdays: []int{2, 4, 5},
		},
	})
}

func (r *Roster) All() []Practitioner {
	out := make([]Practitioner, len(r.practitioners))
	copy(out, r.practitioners)
	return out
}

func (r *Roster) ByID(id string) (*Practitioner, error) {
	for i := range r.practitioners {
		if r.practitioners[i].ID == id {
			p := r.practitioners[i]
			return &p, nil
		}
	}
	return nil, ErrPractitionerNotFound
}

func (r *Roster) BySpecialty(s Specialty) []Practitioner {
	var out []Practitioner
	for _, p := range r.practitioners {
		if p.HasSpecialty(s) {
			out = append(out, p)
		}
	}
	return out
}

// Search filters practitioners by a case-insensitive substring over the name
// and the specialty display labels.
func (r *Roster) Search(q string) []Practitioner {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return r.All()
	}

	var out []Practitioner
	for _, p := range r.practitioners {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
			continue
		}
		for _, sp := range p.Specialties {
			if strings.Contains(strings.ToLower(sp.Label()), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
