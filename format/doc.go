// Package format holds the display rules of ineed prompts.
//
// A rule is a single stylable property of a prompt: the prefix put before the
// message, the prefix put before the user input, whether the message is
// followed by a line break, whether the message is repeated after an invalid
// input, the strings surrounding the index of a list item, and the position
// of the message relative to a list.
//
// Rules are declared with the Fmt builder:
//
//	f := format.New().
//		InputPrefix(": ").
//		RepeatPrompt(true)
//
// Each kind of prompt accepts its own subset of rules, called a rule set:
// WrittenRules for free-text prompts, SelectedRules for list prompts, and
// ThenRules for two chained prompts. Settings a rule set does not accept are
// ignored when a Fmt is applied to it.
//
// Rule sets are partial: every field may be unset. Merging two rule sets keeps
// the fields of the receiver and fills the unset ones from the other set, so
// the rules declared closest to a prompt win. Expanding a rule set replaces
// each unset field with its default value:
//
//	msg_prefix     "- "
//	input_prefix   "> "
//	break_line     true
//	repeat_prompt  false
//	list_surrounds "[" and "] - "
//	list_msg_pos   Bottom
package format
