package scene

// Interaction is the pointer state of an object. It is a bit set over
// hovered and clicked, giving the four states idle, hovered, clicked and
// hovered+clicked.
type Interaction uint8

const (
	InteractionIdle    Interaction = 0
	InteractionHovered Interaction = 1 << 0
	InteractionClicked Interaction = 1 << 1

	InteractionHoveredClicked = InteractionHovered | InteractionClicked
)

func (i Interaction) Hovered() bool {
	return i&InteractionHovered != 0
}

func (i Interaction) Clicked() bool {
	return i&InteractionClicked != 0
}

// Enter is the transition on pointer enter.
func (i Interaction) Enter() Interaction {
	return i | InteractionHovered
}

// Leave is the transition on pointer leave.
func (i Interaction) Leave() Interaction {
	return i &^ InteractionHovered
}

// Click toggles the clicked flag. Two clicks restore the previous state.
func (i Interaction) Click() Interaction {
	return i ^ InteractionClicked
}

func (i Interaction) String() string {
	switch i {
	case InteractionIdle:
		return "idle"
	case InteractionHovered:
		return "hovered"
	case InteractionClicked:
		return "clicked"
	case InteractionHoveredClicked:
		return "hovered+clicked"
	default:
		return "invalid"
	}
}
