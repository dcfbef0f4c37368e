package content

import "github.com/santaluzia/hospital-booking/internal/schedule"

// HospitalInfo is the static institutional data shown on the public pages.
type HospitalInfo struct {
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	WhatsApp     string   `json:"whatsapp"`
	Email        string   `json:"email"`
	OpeningHours []string `json:"opening_hours"`
	About        []string `json:"about,omitempty"`
}

func Hospital() HospitalInfo {
	return HospitalInfo{
		Name:     "Hospital Santa Luzia do Rocio",
		Tagline:  "Cuidado especializado em saúde da mulher",
		Address:  "Rua das Flores, 1200 - Centro, Curitiba, PR",
		Phone:    "(41) 3322-1100",
		WhatsApp: "(41) 99988-7766",
		Email:    "contato@santaluziadorocio.com.br",
		OpeningHours: []string{
			"Atendimento 24h para emergências",
			"Consultas: segunda a sexta, 08:00 às 18:00",
		},
		About: []string{
			"Há mais de 30 anos o Hospital Santa Luzia do Rocio é referência em ginecologia e obstetrícia em Curitiba, unindo equipe especializada e estrutura completa de exames e maternidade.",
			"Nossa missão é oferecer um atendimento humanizado em todas as fases da vida da mulher, da primeira consulta ginecológica ao acompanhamento pré-natal e ao parto.",
		},
	}
}

type ServiceLine struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func Services() []ServiceLine {
	return []ServiceLine{
		{
			Title:       "Ginecologia",
			Description: "Consultas de rotina, prevenção e tratamento de condições da saúde feminina, com atendimento humanizado.",
		},
		{
			Title:       "Obstetrícia",
			Description: "Acompanhamento pré-natal completo, do diagnóstico da gravidez ao pós-parto, incluindo gestações de alto risco.",
		},
		{
			Title:       "Exames",
			Description: "Ultrassonografias, mamografias, densitometria óssea e exames laboratoriais voltados à saúde da mulher.",
		},
		{
			Title:       "Cirurgias",
			Description: "Procedimentos ginecológicos e obstétricos realizados em centro cirúrgico próprio, com equipe dedicada.",
		},
	}
}

type FAQEntry struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func FAQ() []FAQEntry {
	return []FAQEntry{
		{
			Category: "Agendamento",
			Question: "Como faço para agendar uma consulta?",
			Answer:   "Você pode agendar uma consulta de três formas: online através do nosso site na seção de agendamentos, por telefone ou presencialmente na recepção do hospital.",
		},
		{
			Category: "Agendamento",
			Question: "Posso cancelar ou remarcar minha consulta?",
			Answer:   "Sim, você pode cancelar ou remarcar sua consulta até 24 horas antes do horário agendado, sem custo adicional. Para isso, entre em contato com a central de atendimento.",
		},
		{
			Category: "Consultas",
			Question: "Quais documentos preciso levar na primeira consulta?",
			Answer:   "Para a primeira consulta, é necessário trazer documento de identidade com foto, CPF, cartão do plano de saúde (se aplicável) e exames anteriores relacionados.",
		},
		{
			Category: "Consultas",
			Question: "Quanto tempo dura uma consulta?",
			Answer:   "As consultas têm duração média de 30 a 45 minutos, podendo variar conforme a especialidade e a necessidade de cada paciente.",
		},
		{
			Category: "Convênios",
			Question: "O hospital aceita meu plano de saúde?",
			Answer:   "O Hospital Santa Luzia do Rocio atende a maioria dos convênios e planos de saúde. Para verificar se o seu plano é aceito, entre em contato com a central de atendimento.",
		},
		{
			Category: "Pré-natal",
			Question: "Como funciona o acompanhamento pré-natal?",
			Answer:   "O acompanhamento pré-natal consiste em consultas regulares com o obstetra para monitorar a saúde da mãe e o desenvolvimento do bebê ao longo de toda a gestação.",
		},
		{
			Category: "Pré-natal",
			Question: "Quando devo começar o pré-natal?",
			Answer:   "Idealmente, o pré-natal deve ser iniciado assim que a gravidez for confirmada, preferencialmente até a 12ª semana de gestação.",
		},
		{
			Category: "Exames",
			Question: "Com que frequência devo fazer o exame ginecológico?",
			Answer:   "Recomenda-se que mulheres sexualmente ativas ou acima de 21 anos realizem exames ginecológicos anualmente para prevenção.",
		},
		{
			Category: "Exames",
			Question: "Quais exames são realizados no hospital?",
			Answer:   "Realizamos diversos exames relacionados à saúde da mulher, como ultrassonografias, mamografias, densitometria óssea e exames laboratoriais.",
		},
		{
			Category: "Exames",
			Question: "Como receber os resultados dos meus exames?",
			Answer:   "Os resultados dos exames podem ser retirados presencialmente no hospital, enviados por e-mail ou acessados através do nosso portal.",
		},
		{
			Category: "Maternidade",
			Question: "O hospital oferece parto normal e cesárea?",
			Answer:   "Sim, o Hospital Santa Luzia do Rocio oferece tanto parto normal quanto cesárea, sempre priorizando a saúde da mãe e do bebê.",
		},
		{
			Category: "Maternidade",
			Question: "É possível conhecer a maternidade antes do parto?",
			Answer:   "Sim, oferecemos visitas guiadas à maternidade para gestantes e acompanhantes. Para agendar uma visita, entre em contato com a recepção.",
		},
	}
}

// DoctorProfile is a roster practitioner plus the display schedule shown on
// the public directory page.
type DoctorProfile struct {
	schedule.Practitioner
	Schedule []string `json:"schedule"`
}

var displaySchedules = map[string][]string{
	"1": {"Segunda, Terça e Quinta", "08:00 - 12:00", "14:00 - 18:00"},
	"2": {"Segunda, Quarta e Sexta", "09:00 - 12:00", "13:00 - 17:00"},
	"3": {"Terça, Quarta e Sexta", "08:00 - 14:00"},
	"4": {"Segunda, Quinta e Sexta", "07:00 - 13:00"},
	"5": {"Terça, Quinta e Sexta", "13:00 - 19:00"},
}

func DoctorProfiles(practitioners []schedule.Practitioner) []DoctorProfile {
	out := make([]DoctorProfile, 0, len(practitioners))
	for _, p := range practitioners {
		out = append(out, DoctorProfile{
			Practitioner: p,
			Schedule:     displaySchedules[p.ID],
		})
	}
	return out
}
