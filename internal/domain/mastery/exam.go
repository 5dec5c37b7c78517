package mastery

// Question is one multiple-choice exam question. Answer indexes into
// Options.
type Question struct {
	Prompt  string
	Options []string
	Answer  int
}

// DefaultExam returns the qualifying exam presented to promotion
// candidates.
func DefaultExam() []Question {
	return []Question{
		{
			Prompt:  "O que significa RPG?",
			Options: []string{"Role Playing Game", "Real Player Game", "Random Play Game", "Role Power Game"},
			Answer:  0,
		},
		{
			Prompt:  "Qual é o papel principal do Mestre?",
			Options: []string{"Ganhar dos jogadores", "Narrar e arbitrar o jogo", "Jogar dados", "Criar personagens"},
			Answer:  1,
		},
		{
			Prompt:  "O que é um D20?",
			Options: []string{"Um tipo de magia", "Um dado de 20 lados", "Um personagem", "Uma classe"},
			Answer:  1,
		},
		{
			Prompt:  "O que significa \"sessão zero\"?",
			Options: []string{"Primeira aventura", "Reunião de planejamento inicial", "Última sessão", "Sessão cancelada"},
			Answer:  1,
		},
		{
			Prompt:  "O que é importante em uma boa narrativa de RPG?",
			Options: []string{"Matar todos os personagens", "Colaboração e diversão", "Ganhar sempre", "Seguir regras rigidamente"},
			Answer:  1,
		},
		{
			Prompt:  "Como um mestre deve lidar com conflitos entre jogadores?",
			Options: []string{"Ignorar", "Mediar com imparcialidade", "Expulsar todos", "Tomar partido"},
			Answer:  1,
		},
		{
			Prompt:  "O que é \"railroading\" e por que deve ser evitado?",
			Options: []string{"Uma técnica avançada", "Forçar uma história única sem escolhas", "Um tipo de dado", "Uma classe de personagem"},
			Answer:  1,
		},
		{
			Prompt:  "Qual a importância da \"regra de ouro\" no RPG?",
			Options: []string{"Sempre rolar dados", "Diversão vem antes das regras", "Nunca mudar regras", "Mestre sempre vence"},
			Answer:  1,
		},
		{
			Prompt:  "O que é importante ao criar um encontro balanceado?",
			Options: []string{"Sempre ser impossível", "Considerar nível e capacidades dos jogadores", "Ser sempre fácil", "Não planejar"},
			Answer:  1,
		},
		{
			Prompt:  "Como lidar com um jogador problemático?",
			Options: []string{"Ignorar sempre", "Conversar em particular primeiro", "Expulsar imediatamente", "Punir o personagem"},
			Answer:  1,
		},
	}
}

// GradeExam counts correct answers. Unanswered questions (index out of
// range or negative) score zero. Extra answers beyond the question list are
// ignored.
func GradeExam(questions []Question, answers []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.Answer {
			score++
		}
	}
	return score
}

// Passed reports whether the score meets the exam bar.
func Passed(score int) bool {
	return score >= PassingScore
}
