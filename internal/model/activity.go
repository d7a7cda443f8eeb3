// Package model содержит доменные структуры для кружков и записи учеников
package model

// Activity описывает кружок: название, описание, расписание,
// вместимость и список записанных учеников.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// ActivityView описывает представление кружка, которое отдаётся наружу.
// Название кружка служит ключом в общем отображении и в тело не входит.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// View строит внешнее представление кружка с копией списка участников,
// чтобы вызывающая сторона не могла изменить внутреннее состояние.
func (a Activity) View() ActivityView {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return ActivityView{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}
