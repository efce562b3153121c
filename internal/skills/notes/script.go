package notes

import (
	"fmt"
	"strings"
)

// escape makes a string safe inside an AppleScript double-quoted literal.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func listAccountsScript() string {
	return `tell application "Notes"
	set accountList to ""
	repeat with a in accounts
		set accountList to accountList & name of a & linefeed
	end repeat
	return accountList
end tell`
}

func listFoldersScript() string {
	return `tell application "Notes"
	set folderList to ""
	repeat with a in accounts
		set accountName to name of a
		repeat with f in folders of a
			set folderList to folderList & accountName & " > " & name of f & " (" & (count of notes in f) & " notes)" & linefeed
		end repeat
	end repeat
	return folderList
end tell`
}

// listNotesScript narrows by folder and/or account when given; Notes
// organizes by account, so the unfiltered form walks every account.
func listNotesScript(folder, account string) string {
	switch {
	case account != "" && folder != "":
		return fmt.Sprintf(`tell application "Notes"
	set noteList to ""
	try
		set targetAccount to account "%s"
		set targetFolder to folder "%s" of targetAccount
		repeat with n in notes of targetFolder
			set noteList to noteList & name of n & linefeed
		end repeat
	on error errMsg
		return "ERROR: " & errMsg
	end try
	return noteList
end tell`, escape(account), escape(folder))
	case account != "":
		return fmt.Sprintf(`tell application "Notes"
	set noteList to ""
	try
		set targetAccount to account "%s"
		repeat with n in notes of targetAccount
			set noteList to noteList & name of n & linefeed
		end repeat
	on error errMsg
		return "ERROR: " & errMsg
	end try
	return noteList
end tell`, escape(account))
	case folder != "":
		return fmt.Sprintf(`tell application "Notes"
	set noteList to ""
	repeat with a in accounts
		try
			set targetFolder to folder "%s" of a
			repeat with n in notes of targetFolder
				set noteList to noteList & (name of a) & " > " & name of n & linefeed
			end repeat
		end try
	end repeat
	return noteList
end tell`, escape(folder))
	default:
		return `tell application "Notes"
	set noteList to ""
	repeat with a in accounts
		set accountName to name of a
		repeat with n in notes of a
			set noteList to noteList & accountName & " > " & name of n & linefeed
		end repeat
	end repeat
	return noteList
end tell`
	}
}

func createNoteScript(title, body, folder, account string) string {
	t, b := escape(title), escape(body)
	switch {
	case account != "" && folder != "":
		return fmt.Sprintf(`tell application "Notes"
	try
		set targetAccount to account "%s"
		set targetFolder to folder "%s" of targetAccount
		set newNote to make new note at targetFolder with properties {name:"%s", body:"%s"}
		return "SUCCESS: Created note '" & name of newNote & "'"
	on error errMsg
		return "ERROR: " & errMsg
	end try
end tell`, escape(account), escape(folder), t, b)
	case account != "":
		return fmt.Sprintf(`tell application "Notes"
	try
		set targetAccount to account "%s"
		set defaultFolder to default folder of targetAccount
		set newNote to make new note at defaultFolder with properties {name:"%s", body:"%s"}
		return "SUCCESS: Created note '" & name of newNote & "'"
	on error errMsg
		return "ERROR: " & errMsg
	end try
end tell`, escape(account), t, b)
	case folder != "":
		return fmt.Sprintf(`tell application "Notes"
	try
		repeat with a in accounts
			try
				set targetFolder to folder "%s" of a
				set newNote to make new note at targetFolder with properties {name:"%s", body:"%s"}
				return "SUCCESS: Created note '" & name of newNote & "' in " & name of a
			end try
		end repeat
		return "ERROR: Folder not found"
	on error errMsg
		return "ERROR: " & errMsg
	end try
end tell`, escape(folder), t, b)
	default:
		return fmt.Sprintf(`tell application "Notes"
	try
		set targetAccount to first account
		set defaultFolder to default folder of targetAccount
		set newNote to make new note at defaultFolder with properties {name:"%s", body:"%s"}
		return "SUCCESS: Created note '" & name of newNote & "' in " & name of targetAccount
	on error errMsg
		return "ERROR: " & errMsg
	end try
end tell`, t, b)
	}
}

// readNoteScript returns the note body; plaintext selects the plaintext
// property instead of the HTML body.
func readNoteScript(title, account string, plaintext bool) string {
	prop := "body"
	if plaintext {
		prop = "plaintext"
	}
	if account != "" {
		return fmt.Sprintf(`tell application "Notes"
	try
		set targetAccount to account "%s"
		set targetNote to first note of targetAccount whose name is "%s"
		return %s of targetNote
	on error errMsg
		return "ERROR: " & errMsg
	end try
end tell`, escape(account), escape(title), prop)
	}
	return fmt.Sprintf(`tell application "Notes"
	repeat with a in accounts
		try
			set targetNote to first note of a whose name is "%s"
			return %s of targetNote
		end try
	end repeat
	return "ERROR: Note not found"
end tell`, escape(title), prop)
}

func searchNotesScript(query string) string {
	return fmt.Sprintf(`tell application "Notes"
	set matchingNotes to ""
	set searchQuery to "%s"
	repeat with a in accounts
		set accountName to name of a
		repeat with n in notes of a
			try
				set noteName to name of n
				set noteBody to plaintext of n
				set lowerName to do shell script "echo " & quoted form of noteName & " | tr '[:upper:]' '[:lower:]'"
				set lowerBody to do shell script "echo " & quoted form of noteBody & " | tr '[:upper:]' '[:lower:]'"
				if (lowerBody contains searchQuery) or (lowerName contains searchQuery) then
					set matchingNotes to matchingNotes & accountName & " > " & noteName & linefeed
				end if
			end try
		end repeat
	end repeat
	return matchingNotes
end tell`, escape(strings.ToLower(query)))
}

func deleteNoteScript(title, account string) string {
	if account != "" {
		return fmt.Sprintf(`tell application "Notes"
	try
		set targetAccount to account "%s"
		set targetNote to first note of targetAccount whose name is "%s"
		delete targetNote
		return "SUCCESS: Deleted note '%s'"
	on error errMsg
		return "ERROR: " & errMsg
	end try
end tell`, escape(account), escape(title), escape(title))
	}
	return fmt.Sprintf(`tell application "Notes"
	repeat with a in accounts
		try
			set targetNote to first note of a whose name is "%s"
			delete targetNote
			return "SUCCESS: Deleted note '%s' from " & name of a
		end try
	end repeat
	return "ERROR: Note not found"
end tell`, escape(title), escape(title))
}
