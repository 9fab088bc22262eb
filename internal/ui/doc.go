package ui

// Package ui contains the fyne host shell: the main window with the device
// class and attached integrations, the in-app log viewer fed by the webview
// log sink, and the logging settings dialog.
