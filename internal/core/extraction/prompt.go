package extraction

// promptTemplate embeds the graph schema description and the chunk text.
// The null discipline ("leave it as null, never extrapolate") is enforced
// here by instruction; the validator only checks the minimum fields.
const promptTemplate = `You are building a knowledge graph relating modalities (habits, supplements, exercises, routines, etc),
observable benefits (increased muscle gain, improved endurance, etc),
observable negatives (increased risk of cardiovascular disease, cancer, etc),
and sources (scientific sources with evidence).

Given the following text, return a JSON object with "nodes" and "relationships".

Each node should have:
- "name": the unique identifier of the entity
- "label": either "Modality", "Benefit", "Negative", or "Source"
- "description": a short description

Modalities should carry more information than the other types of nodes:
- "subtype": the subcategory of modality. The categories are: Exercise, Supplement, Mindfulness, Environmental, Food, Sleep, and Emotional. Pick the category that most closely aligns with the modality in question.
- "effort_score": a value from 1-100 describing the effort required to participate in the modality
- "dosage_lowbound": the lower bound for dosage of the modality, if applicable, as an integer
- "dosage_upbound": the upper bound for dosage of the modality, if applicable, as an integer
- "dosage_units": the units the dosage represents, e.g. mg, mcg, minutes
- "frequency_min": the minimum number of times the modality should be done per repeat period, if applicable, as an integer
- "frequency_max": the maximum number of times the modality should be done per repeat period, if applicable, as an integer
- "repeat": how often the modality should be repeated at the given frequency: daily, weekly, monthly, or as-needed
- "prescription_or_administered": a boolean for whether this is a prescribed treatment or administered by a health professional

Additionally, source nodes should store:
- "doi": the DOI link of the scientific source, if it can be found

Each relationship should have:
- "source": name of the source node
- "target": name of the target node
- "type": the type of relationship, used as the label
    - for modality-to-source links (a modality is studied in a source), use "STUDIED_IN"
    - for source-to-benefit or source-to-negative links (a study shows results pointing to an outcome), use "POINTS_TO"
    - for modality-to-modality links (modalities that reinforce or conflict with each other), use "SYNERGISTIC" or "ANTAGONISTIC" depending on context, recorded in both directions
- "explanation": a sentence explaining the relationship
- "effect_size": a number from 1-100 representing the magnitude of the relationship
- "confidence": a number from 1-100 representing the certainty of the science
- "conditions": if applicable, any conditions for this relationship (e.g. "in men 65 and older" or "if used excessively")

Only one modality should be linked to any given source node. If a study covers two different modalities, break it up into two different source nodes and label them accordingly. Confidence and effect size values are PER MODALITY, with the study giving them their values.

If you cannot find any of the information listed above, leave it as null. Under no circumstances should you extrapolate or fabricate data.

For the given piece of literature, create a source node and either create a modality node for the modality being studied, or use an existing node of the same or nearly identical name. Prefer linking to an applicable existing node over creating a new one. Link the modality node to the source node. Then link all applicable benefits or negatives to the source node, with corresponding magnitude and confidence scores. Create benefit and negative nodes if needed, but preferably use existing ones.

Return only valid JSON, nothing else. Here is the text:

"""%s"""`
