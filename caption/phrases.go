package caption

// The phrase pools below are ordered: each pool starts with its
// conventional entries and ends with the unexpected ones, and the
// generator occasionally samples only from the tail.

var surrealPhrases = []string{
	"where geometry meets the void",
	"colors that dream in fragments",
	"the shape of thoughts unspoken",
	"reality folded into itself",
	"time melts in geometric patterns",
	"the space between perception and truth",
	"where lines lose their meaning",
	"a canvas of fractured memories",
	"the geometry of the impossible",
	"colors that speak in angles",
	"where form becomes feeling",
	"the mathematics of emotion",
	"shapes that remember differently",
	"the architecture of dreams",
	"where perspective breaks free",
	"colors that think in curves",
	"the geometry of silence",
	"where reality takes a different angle",
	"the shape of what could be",
	"colors that question their existence",
	"the sound of a triangle breaking",
	"where circles learn to cry",
	"squares having an existential crisis",
	"rectangles in love with infinity",
	"the taste of blue geometry",
	"where numbers feel lonely",
	"the weight of a color",
	"shapes that smell like memories",
	"the calculus of heartbreak",
	"differential equations of desire",
	"where algebra meets anxiety",
	"the integral of all feelings",
	"fractals of forgotten conversations",
	"the logarithm of loneliness",
	"vectors pointing to nowhere",
	"yesterday's tomorrow in today's colors",
	"where past and future collide geometrically",
	"the present moment as a broken line",
	"eternity compressed into a square",
	"time zones in a single point",
	"the speed of light slowed to a crawl",
	"gravity defying its own rules",
	"where matter becomes thought",
	"the density of a dream",
	"solid air and liquid stone",
	"the temperature of an idea",
	"where physics takes a coffee break",
	"circles growing like plants",
	"where nature learns geometry",
	"the photosynthesis of shapes",
	"trees that think in straight lines",
	"flowers blooming in perfect squares",
	"where algorithms feel nostalgia",
	"the pixel density of a memory",
	"code that dreams in color",
	"where binary meets the infinite",
	"the resolution of a feeling",
}

var wordplayPhrases = []string{
	"point of view, point of you",
	"drawing conclusions",
	"a stroke of genius, or just strokes",
	"framing the unframeable",
	"coloring outside the lines of reality",
	"shaping up to be something else",
	"a different perspective on perspective",
	"lines of thought, thought of lines",
	"the art of being abstract",
	"form follows function, but what if function follows form?",
	"a square peg in a round world",
	"thinking outside the box, but the box is also outside",
	"the angle of repose, the repose of angles",
	"drawing a blank, then drawing on it",
	"a matter of perspective, or a perspective of matter",
	"the right angle to a wrong question",
	"where parallel lines finally meet",
	"a circle's square root of existence",
	"the hypotenuse of a broken heart",
	"acute angles, obtuse feelings",
	"where perpendicular meets parallel",
	"the radius of reason",
	"a tangent to reality",
	"the circumference of consciousness",
	"where diameter meets destiny",
	"the area of awareness",
	"volume of void, void of volume",
	"the surface of the profound",
	"depth in two dimensions",
	"where flat meets infinite",
	"the edge of the center",
	"where inside is outside",
	"the beginning of the end of the beginning",
	"nowhere is now here",
	"the presence of absence",
	"where nothing is everything",
	"the everything of nothing",
	"full emptiness, empty fullness",
}

var artReferences = []string{
	"in the style of fractured perception",
	"where cubism meets expressionism",
	"a surrealist's geometry",
	"suprematist dreams",
	"constructivist chaos",
	"abstract expression of the inexpressible",
	"minimalist maximalism",
	"geometric poetry",
	"the mathematics of beauty",
	"where art meets algorithm",
	"impressionism of the digital age",
	"where baroque meets minimalism",
	"renaissance in reverse",
	"romanticism without the romance",
	"classicism deconstructed",
	"where pop art meets philosophy",
	"the baroque minimalism paradox",
	"neo-classical chaos theory",
	"post-modern pre-modernism",
	"where dada meets data",
	"the realism of the unreal",
	"hyperrealism of the abstract",
	"where photorealism meets impossibility",
	"the conceptualism of the concrete",
	"where performance art stands still",
	"the installation of nothing",
	"where land art meets digital space",
	"the body art of geometric forms",
	"where street art goes indoors",
	"the graffiti of the void",
}

var endings = []string{
	"what do you see?",
	"perception is reality",
	"art imitates life, or is it the other way?",
	"in the space between",
	"where meaning begins",
	"the question is the answer",
	"see what you feel",
	"feel what you see",
	"beyond the visible",
	"within the impossible",
	"or maybe not",
	"but also yes",
	"unless it isn't",
	"which is also wrong",
	"but that's just my perspective",
	"or is it?",
	"probably",
	"definitely maybe",
	"certainly uncertain",
	"absolutely relative",
	"definitively indefinite",
	"where certainty doubts itself",
	"the answer that questions",
	"the solution that creates problems",
	"where understanding misunderstands",
	"the explanation that confuses",
	"clarity in confusion",
	"confusion in clarity",
	"the obvious hidden",
	"the hidden obvious",
	"where secrets are public",
	"the private made universal",
	"individual collective",
	"collective individual",
	"the personal impersonal",
	"impersonal personal",
	"where I becomes we becomes I",
	"the singular plural",
	"plural singular",
	"one in many, many in one",
}

var hashtagBases = []string{
	"abstractart", "contemporaryart", "digitalart", "modernart",
	"artwork", "art", "abstract", "geometric", "minimalist",
	"avantgarde", "surrealism", "cubism", "expressionism",
	"artdaily", "instaart", "artgallery", "artlovers",
	"creative", "design", "visualart", "artistic",
	"abstractexpressionism", "geometricart", "minimalism",
	"artoftheday", "artistsoninstagram", "artcollector",
	"contemporaryartist", "abstractpainting", "modernartist",
}

var styleHashtags = map[string][]string{
	"cubism":        {"cubism", "cubist", "picasso", "geometricfragmentation"},
	"cubist":        {"cubism", "cubist", "picasso", "geometricfragmentation"},
	"expressionism": {"expressionism", "expressionist", "vangogh", "emotionalart"},
	"expressionist": {"expressionism", "expressionist", "vangogh", "emotionalart"},
	"surrealism":    {"surrealism", "surrealist", "dali", "dreamlike", "surrealart"},
	"surrealist":    {"surrealism", "surrealist", "dali", "dreamlike", "surrealart"},
	"fragmented":    {"fragmented", "fragmentation", "abstract", "geometric"},
	"intense":       {"intense", "bold", "highcontrast", "emotional"},
	"suprematist":   {"suprematism", "malevich", "constructivism"},
	"mandelbrot":    {"fractal", "mandelbrot", "mathart", "generativeart"},
	"julia":         {"fractal", "juliaset", "mathart", "generativeart"},
}

// separators join caption parts; the newline pair splits the caption
// into paragraphs.
var separators = []string{" • ", " | ", " ~ ", " — ", " ... ", "\n\n", " / ", " × ", " + "}
