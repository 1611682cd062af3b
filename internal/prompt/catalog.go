// Package prompt holds the fixed instruction presets used for code analysis.
package prompt

// AnalysisType selects what the LLM is asked to produce for a snippet.
type AnalysisType string

const (
	Documentation AnalysisType = "Documentation"
	AIDetection   AnalysisType = "AI Detection"
)

// Complexity selects the verbosity tier of the instruction.
type Complexity string

const (
	Basic    Complexity = "basic"
	Detailed Complexity = "detailed"
	Advanced Complexity = "advanced"
)

// Complexities lists the valid tiers in ascending order of detail.
var Complexities = []Complexity{Basic, Detailed, Advanced}

// AnalysisTypes lists the valid analysis modes.
var AnalysisTypes = []AnalysisType{Documentation, AIDetection}

// Preset bodies are raw string literals kept flush-left: list items carry only
// the spacing shown here, so the instruction text has no incidental indentation.
const documentationBasic = `Generate comprehensive documentation for this code.`

const documentationDetailed = `Generate comprehensive documentation for this code.
Include:
1. Purpose and functionality
2. Key functions/classes
3. Input/output specifications
4. Usage examples`

const documentationAdvanced = `As an expert developer and technical writer, generate thorough documentation for this code.
Include:
1. Executive summary of purpose and functionality
2. Detailed breakdown of architecture and design patterns
3. Complete API reference for all functions/classes/methods
4. Input/output specifications with data types and constraints
5. Error handling approach and edge cases
6. Usage examples with expected outputs
7. Dependencies and requirements
8. Potential optimization opportunities`

const aiDetectionBasic = `Analyze this code for signs of AI generation.`

const aiDetectionDetailed = `Analyze this code for signs of AI generation. Consider:
1. Code structure patterns
2. Common AI-generated code characteristics
3. Documentation quality
4. Style consistency`

const aiDetectionAdvanced = `As an expert in code analysis and AI-generated content detection, thoroughly examine this code for hallmarks of AI generation.
Analyze the following aspects and provide a confidence score (0-100%) for each:

1. Structural fingerprints:
    - Overly consistent formatting that lacks human variability
    - Unnaturally regular comment patterns and documentation
    - Excessive or redundant error handling

2. Stylistic indicators:
    - Variable naming conventions that are too consistent or follow textbook patterns
    - Lack of developer shortcuts or "quirks" found in human code
    - Unnatural comment-to-code ratio

3. Logical patterns:
    - Solutions that follow common tutorial examples too closely
    - Implementations that prioritize readability over efficiency
    - Overly abstracted or generalized solutions when specificity would be more appropriate

4. Technical hallmarks:
    - Implementation approaches that align with common LLM training data
    - Inclusion of explanatory comments that a human developer wouldn't typically include
    - Missing domain-specific optimizations that human experts would implement

Conclude with an overall assessment of whether this code was likely AI-generated,
partially AI-assisted, or human-written, with an overall confidence score.`

// Catalog maps (analysis type, complexity) to a preset instruction.
// The preset texts are fixed product content; they are the tool's only tuning
// surface and must not be derived or rewritten at runtime.
type Catalog struct {
	presets map[AnalysisType]map[Complexity]string
}

// NewCatalog returns the catalog of the six preset instructions.
func NewCatalog() *Catalog {
	return &Catalog{
		presets: map[AnalysisType]map[Complexity]string{
			Documentation: {
				Basic:    documentationBasic,
				Detailed: documentationDetailed,
				Advanced: documentationAdvanced,
			},
			AIDetection: {
				Basic:    aiDetectionBasic,
				Detailed: aiDetectionDetailed,
				Advanced: aiDetectionAdvanced,
			},
		},
	}
}

// Get returns the preset for the given type and complexity. An unrecognized
// complexity falls back to the detailed tier so a caller always receives a
// usable instruction.
func (c *Catalog) Get(t AnalysisType, level Complexity) string {
	tier, ok := c.presets[t]
	if !ok {
		tier = c.presets[Documentation]
	}
	if text, ok := tier[level]; ok {
		return text
	}
	return tier[Detailed]
}

// ParseAnalysisType maps user input to an AnalysisType, defaulting to Documentation.
func ParseAnalysisType(s string) AnalysisType {
	switch s {
	case string(AIDetection), "ai-detection", "ai_detection", "aidetection":
		return AIDetection
	default:
		return Documentation
	}
}

// ParseComplexity maps user input to a Complexity, defaulting to the detailed tier.
func ParseComplexity(s string) Complexity {
	switch Complexity(s) {
	case Basic, Detailed, Advanced:
		return Complexity(s)
	default:
		return Detailed
	}
}
