package braciole

// ListAction represents user actions that can occur within a List component.
type ListAction int

const (
	ListActionSelected           ListAction = iota // User selected an item (A button)
	ListActionTriggered                            // User triggered the action button
	ListActionSecondaryTriggered                   // User triggered the secondary action button
	ListActionConfirmed                            // User confirmed the selection (Start button)
)

// DetailAction represents user actions that can occur within a Detail component.
type DetailAction int

const (
	DetailActionNone      DetailAction = iota // No action taken
	DetailActionTriggered                     // User triggered the primary action (A button)
	DetailActionCancelled                     // User cancelled/went back (B button)
)
