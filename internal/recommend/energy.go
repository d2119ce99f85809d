package recommend

// EnergyLabel describes how demanding a place is, for display.
type EnergyLabel struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
	Emoji string `json:"emoji,omitempty"`
}

// ParentEnergy labels parent_energy_required; higher scores mean an easier outing for the parent.
func ParentEnergy(score float64) EnergyLabel {
	switch {
	case score >= 4.5:
		return EnergyLabel{Text: "매우 편함", Color: "#4CAF50"}
	case score >= 3.5:
		return EnergyLabel{Text: "편함", Color: "#8BC34A"}
	case score >= 2.5:
		return EnergyLabel{Text: "보통", Color: "#FFC107"}
	case score >= 1.5:
		return EnergyLabel{Text: "활동적", Color: "#FF9800"}
	default:
		return EnergyLabel{Text: "매우 활동적", Color: "#F44336"}
	}
}

// ChildEnergy labels child_energy_consumption; higher scores mean a calmer activity.
func ChildEnergy(score float64) EnergyLabel {
	switch {
	case score >= 4.5:
		return EnergyLabel{Text: "조용한 활동", Emoji: "😌"}
	case score >= 3.5:
		return EnergyLabel{Text: "가벼운 활동", Emoji: "🙂"}
	case score >= 2.5:
		return EnergyLabel{Text: "적당한 활동", Emoji: "😊"}
	case score >= 1.5:
		return EnergyLabel{Text: "활발한 활동", Emoji: "🤸"}
	default:
		return EnergyLabel{Text: "매우 활발", Emoji: "🏃"}
	}
}
