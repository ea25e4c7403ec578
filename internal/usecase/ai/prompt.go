package ai

import "fmt"

// SummarySystemPrompt is sent as the system message to back-ends that support one
const SummarySystemPrompt = "You are an expert meeting summarization assistant."

// ChatSystemPrompt frames follow-up questions
const ChatSystemPrompt = "You are a helpful meeting assistant that answers questions using only the meeting transcript."

const summaryTemplate = `
Please act as a professional meeting assistant. Based on the following transcript,
provide a response in two parts:

First, a single-line title for the meeting that summarizes its main purpose.
The title must start with "Title: ".

Second, a concise summary of the meeting. The summary must include these three sections:
1.  **Key Discussion Points:** A bulleted list of the main topics that were discussed.
2.  **Decisions Made:** A clear list of any final decisions or agreements reached.
3.  **Action Items:** A list of tasks assigned, including who is responsible if mentioned.

If a section has no relevant information, state "None."

---
MEETING TRANSCRIPT:
%s
---
`

const chatTemplate = `
You are answering a question about a meeting. Use only the information in the
transcript below. Do not use outside knowledge and do not guess.
If the transcript does not contain the answer, say that the transcript does not
mention it.

---
MEETING TRANSCRIPT:
%s
---

QUESTION:
%s
`

// BuildSummaryPrompt embeds the transcript verbatim into the summary instructions.
// The "Title: " line and the three section headers are parsed downstream.
func BuildSummaryPrompt(transcript string) string {
	return fmt.Sprintf(summaryTemplate, transcript)
}

// BuildChatPrompt grounds a single question in the full transcript
func BuildChatPrompt(transcript, question string) string {
	return fmt.Sprintf(chatTemplate, transcript, question)
}
