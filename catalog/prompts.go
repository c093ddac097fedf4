package catalog

var defaultPrompts = []Prompt{
	{
		Id:           "fix_grammar",
		Name:         "Fix Grammar",
		Description:  "Correct grammar, spelling, and punctuation",
		SystemPrompt: "Please correct the grammar, spelling, and punctuation in the text below. Keep the original meaning, tone, and intent exactly the same. Do not add new information or remove anything. Return only the corrected version.",
		Icon:         "✓",
	},
	{
		Id:           "improve_text",
		Name:         "Improve Text",
		Description:  "Make text clearer and smoother",
		SystemPrompt: "Please rewrite the text below to make it clearer and smoother, but keep the same meaning. Use simple, everyday words (no fancy or technical vocabulary). Don't make it longer than necessary but you can make up to 50 percent longer, and keep the style sounding like the original. Return only the improved version.",
		Icon:         "✨",
	},
	{
		Id:           "summarize",
		Name:         "Summarize",
		Description:  "Create a concise summary",
		SystemPrompt: "Please summarize the text below in a clear, concise way while keeping the main ideas and key details. Don't add new information or opinions. Keep the tone neutral and accurate.",
		Icon:         "📝",
	},
	{
		Id:           "expand",
		Name:         "Expand",
		Description:  "Add more detail and context",
		SystemPrompt: "Please expand on the text below by adding relevant details. Keep the original meaning and tone without using complex words, but make it more comprehensive and informative. Return only the expanded version.",
		Icon:         "📖",
	},
	{
		Id:           "simplify",
		Name:         "Simplify",
		Description:  "Make text easier to understand",
		SystemPrompt: "Please rewrite the text below using simpler language that anyone can understand. Keep the same meaning but use shorter sentences and common words. Make it clear and straightforward.",
		Icon:         "💡",
	},
	{
		Id:           "professional",
		Name:         "Make Professional",
		Description:  "Convert to formal business tone",
		SystemPrompt: "Please rewrite the text below in a professional, business-appropriate tone. Use formal language while keeping it clear and concise. Maintain the original meaning and key points.",
		Icon:         "💼",
	},
	{
		Id:          RawPromptId,
		Name:        "Raw",
		Description: "Send the text as is, without instruction",
	},
}
