package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the theme's icon font.
const (
	CloudRefresh  = "\U000F052A" // Cloud with refresh arrows
	CloudDownload = "\U000F0162" // Cloud with download arrow
	CloudUpload   = "\U000F0167" // Cloud with upload arrow
	CloudCheck    = "\U000F0160" // Cloud with checkmark
	CloudAlert    = "\U000F09E0" // Cloud with warning

	Download = "\U000F01DA" // Download arrow icon
	Update   = "\U000F06B0" // Update/sync icon

	CircleOutline = "\U000F0131" // Empty circle (unselected mark)
	CircleChecked = "\U000F0133" // Circle with checkmark (selected mark)
)
