package main

type uiState struct {
	mode       mode
	command    CommandInput
	zoom       zoomWindowUI
	drag       dragState
	showTable  bool
	noticeMsg  string
	noticeType string
	noticeSeq  int
}
