package errors

import "errors"

var (
	// Localization errors 🌐
	ErrLanguageFileMissing = errors.New("❌ could not open language file")
	ErrMessageMissing      = errors.New("❌ missing message for language")

	// Command line errors 💻
	ErrUnknownArgument = errors.New("❌ unrecognized argument")

	// Folder list errors 📂
	ErrFolderListMissing = errors.New("❌ could not open folder list")
	ErrUnsafePath        = errors.New("❌ folder path contains unsafe characters")
	ErrFolderMissing     = errors.New("❌ folder does not exist")

	// Launch errors 🚀
	ErrUnsupportedPlatform = errors.New("❌ opening folders is not supported on this platform")
	ErrLaunchFailed        = errors.New("❌ failed to launch file manager")
)
