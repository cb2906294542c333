package relay

// FallbackResponses answer the user when a configured upstream call fails.
var FallbackResponses = []string{
	"Como mestre das fortalezas mágicas, estou aqui para ajudar!",
	"A magia dessas terras responde à sua curiosidade.",
	"Sua jornada é importante para o reino mágico.",
	"As fortalezas aguardam seu comando, grande aventureiro!",
}

// SimulatedResponses answer every query when no API key is configured.
var SimulatedResponses = []string{
	"As muralhas da fortaleza guardam segredos antigos, aventureiro.",
	"Os guardiões mágicos ouviram sua pergunta e sorriem em silêncio.",
	"Cada torre desta fortaleza esconde um encanto esperando por você.",
	"O reino mágico sussurra que a resposta está mais perto do que imagina.",
}

// SimulatorNote marks answers produced without contacting the upstream.
const SimulatorNote = "Modo simulador: configure GEMINI_API_KEY para respostas reais do Gemini"

// MissingQueryMessage is the client error for an absent or empty query.
const MissingQueryMessage = "Faltou a pergunta"
