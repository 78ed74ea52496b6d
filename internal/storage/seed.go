package storage

import (
	"time"

	"github.com/architect/bacprep-backend/internal/models"
)

// seedWriter is the raw insertion surface used to load demo fixtures. Both
// store implementations satisfy it, so the fixture set lives in one place.
type seedWriter interface {
	insertUser(models.User) (models.User, error)
	insertSubject(models.Subject) (models.Subject, error)
	insertTopic(models.Topic) (models.Topic, error)
	insertProgress(models.UserProgress) (models.UserProgress, error)
	insertTest(models.Test) (models.Test, error)
	insertTestResult(models.UserTestResult) (models.UserTestResult, error)
	insertBadge(models.Badge) (models.Badge, error)
	insertUserBadge(models.UserBadge) (models.UserBadge, error)
	insertStreak(models.StudyStreak) (models.StudyStreak, error)
	insertPlanTask(models.StudyPlanTask) (models.StudyPlanTask, error)
	insertChatHistory(models.AiChatHistory) (models.AiChatHistory, error)
}

const day = 24 * time.Hour

// seedDemoData loads the demo account and its study universe: four subjects
// with topics, three practice tests with past results, badges, a three-day
// streak, a four-task study plan and a short chat transcript.
func seedDemoData(w seedWriter) error {
	now := time.Now()

	user, err := w.insertUser(models.User{
		Username:    "andrei",
		Password:    "password",
		DisplayName: "Andrei Munteanu",
		Email:       "andrei@example.com",
		CreatedAt:   now,
	})
	if err != nil {
		return err
	}

	romanian, err := w.insertSubject(models.Subject{
		Name:        "Romanian",
		Description: "Romanian Language and Literature",
		TotalTopics: 18,
		Icon:        "ri-book-open-line",
	})
	if err != nil {
		return err
	}
	mathematics, err := w.insertSubject(models.Subject{
		Name:        "Mathematics",
		Description: "Algebra, Geometry, and Calculus",
		TotalTopics: 14,
		Icon:        "ri-calculator-line",
	})
	if err != nil {
		return err
	}
	english, err := w.insertSubject(models.Subject{
		Name:        "English",
		Description: "Grammar, Vocabulary, and Comprehension",
		TotalTopics: 16,
		Icon:        "ri-translate-2",
	})
	if err != nil {
		return err
	}
	biology, err := w.insertSubject(models.Subject{
		Name:        "Biology",
		Description: "Cell Structure, Human Anatomy, and Ecology",
		TotalTopics: 17,
		Icon:        "ri-microscope-line",
	})
	if err != nil {
		return err
	}

	topics := []models.Topic{
		{
			SubjectID:   romanian.ID,
			Name:        "Introduction to Romanian Literature",
			Description: "Overview of Romanian literary periods and major authors",
			Content:     "<p>Romanian literature developed later than many other European national literatures, with literature in the Romanian language first being published in the 1640s. However, it has a rich oral tradition dating back much earlier.</p><p>The main periods of Romanian literature are:</p><ul><li><b>Medieval Period</b> (16th-18th centuries): Religious texts and chronicles</li><li><b>Romantic Period</b> (19th century): Works of Mihai Eminescu, Vasile Alecsandri</li><li><b>Interwar Period</b>: Works of Liviu Rebreanu, Mihail Sadoveanu</li><li><b>Contemporary Period</b>: Post-WWII to present</li></ul>",
			SortOrder:   1,
			Difficulty:  "easy",
		},
		{
			SubjectID:   romanian.ID,
			Name:        "Romanian Grammar - Noun Cases",
			Description: "Understanding the case system in Romanian language",
			Content:     "<p>Romanian grammar has a relatively complex case system with five cases: Nominative, Accusative, Genitive, Dative, and Vocative.</p><ul><li><b>Nominative (Nominativ)</b>: the subject of the sentence. <i>Cartea este pe masă.</i></li><li><b>Accusative (Acuzativ)</b>: the direct object. <i>Citesc cartea.</i></li><li><b>Genitive (Genitiv)</b>: possession. <i>Pagina cărții este ruptă.</i></li><li><b>Dative (Dativ)</b>: the indirect object. <i>I-am dat elevului o carte.</i></li><li><b>Vocative (Vocativ)</b>: direct address. <i>Domnule profesor!</i></li></ul><p>Nominative and Accusative forms are identical for most nouns, as are Genitive and Dative. Romanian also uses definite articles attached as suffixes (<i>masă</i> → <i>masa</i>), indefinite articles before the noun (<i>o masă</i>), and possessive articles in genitival constructions (<i>cartea elevului</i>).</p>",
			SortOrder:   2,
			Difficulty:  "medium",
		},
		{
			SubjectID:   romanian.ID,
			Name:        "Mihai Eminescu - Life and Works",
			Description: "Study of Romania's national poet and his major works",
			Content:     "<p>Mihai Eminescu (1850-1889) is considered Romania's national poet and one of the most significant figures in Romanian literature. Born in Botoșani, he studied in Cernăuți and Vienna, and worked as a journalist, school inspector, and librarian.</p><p>His writing is characterized by philosophical depth, romantic sensibility, and masterful use of language, with recurring themes of nature and cosmic harmony, love and loss, and national identity.</p><h3>Major Works</h3><ul><li><b>Luceafărul (The Evening Star, 1883)</b>: his masterpiece, a narrative poem exploring the impossible love between a mortal princess and a celestial being</li><li><b>Scrisori (Letters)</b>: philosophical and satirical poems examining Romanian society</li><li><b>Floare albastră (Blue Flower)</b>: a romantic poem referencing the blue flower motif of German Romanticism</li><li><b>Odă (în metru antic)</b>: a meditation on suffering and transcendence</li></ul><p>For the exam, focus on analyzing his romantic themes, his contribution to the Romanian literary language, and the structure of Luceafărul.</p>",
			SortOrder:   3,
			Difficulty:  "medium",
		},
		{
			SubjectID:   romanian.ID,
			Name:        "Ion Creangă - Childhood Memories",
			Description: "Analysis of Creangă's autobiographical work",
			Content:     "<p>Ion Creangă (1837-1889) is known for his autobiographical work 'Amintiri din copilărie' (Memories of Childhood), published between 1881 and 1882 in 'Convorbiri Literare'. The work is divided into four parts and describes the author's childhood in the Moldavian countryside with vivid descriptions, humor, and authentic regional language.</p><h3>Key Themes</h3><ul><li>The contrast between rural life and formal education</li><li>Coming-of-age experiences and moral lessons</li><li>Traditional Romanian village culture and customs</li><li>Humor and authenticity in the narrative voice</li></ul><p>The work uses first-person narration with a dual perspective: the child who experiences the events and the adult who narrates them with nostalgic reflection. Memorable episodes include the cherry tree, the bath in the Ozana River, and the encounter with the strict teacher Popa Duhu.</p>",
			SortOrder:   4,
			Difficulty:  "hard",
		},
		{
			SubjectID:   romanian.ID,
			Name:        "Essay Writing for Bacalaureat - Literary Analysis",
			Description: "Techniques for structuring and writing literary analysis essays",
			Content:     "<h3>Literary Analysis Essay Structure</h3><ol><li><b>Introduction (Introducere)</b>: contextualize the author and work, present your thesis statement, mention the main points you will analyze</li><li><b>Body Paragraphs (Cuprins)</b>: analyze themes, characters, narrative techniques, language and style, with relevant quotations as evidence</li><li><b>Conclusion (Încheiere)</b>: restate your main argument and connect to the broader literary context</li></ol><p>Common mistakes to avoid: summarizing the plot instead of analyzing it, making claims without textual evidence, and ignoring historical context.</p><p>Practical tips: prepare key quotes in advance, structure your time (15 minutes planning, 90 minutes writing, 15 minutes reviewing), and develop a clear argument throughout.</p>",
			SortOrder:   5,
			Difficulty:  "hard",
		},
		{
			SubjectID:   romanian.ID,
			Name:        "Modern Romanian Novel - Liviu Rebreanu's 'Ion'",
			Description: "Analysis of the first modern Romanian novel and its themes",
			Content:     "<p>Published in 1920, 'Ion' by Liviu Rebreanu (1885-1944) is considered the first modern Romanian novel and a landmark of Romanian realism. It portrays rural Transylvanian life at the beginning of the 20th century, focusing on the peasant's relationship with the land.</p><h3>Main Themes</h3><ul><li><b>The obsession with land ('glasul pământului')</b>: Ion's desperate desire to own land, even at the cost of human relationships</li><li><b>The call of love ('glasul iubirii')</b>: the conflict between material desires and emotional needs</li><li><b>Social determinism</b>: characters shaped by their environment and economic conditions</li></ul><p>Rebreanu uses a detached omniscient narrator and a circular structure: the novel begins and ends with a village dance, symbolizing the continuity of rural life despite individual tragedies.</p>",
			SortOrder:   6,
			Difficulty:  "medium",
		},
		{
			SubjectID:   mathematics.ID,
			Name:        "Algebra Fundamentals",
			Description: "Basic algebraic concepts and equations",
			Content:     "<h3>Linear Equations</h3><p>A linear equation takes the form ax + b = c. Example: 2x + 5 = 13 gives 2x = 8, so x = 4.</p><h3>Quadratic Equations</h3><p>A quadratic equation takes the form ax² + bx + c = 0 with a ≠ 0, solvable by factoring, completing the square, or the quadratic formula x = (-b ± √(b² - 4ac)) / 2a.</p><h3>Functions</h3><p>A function relates each input in its domain to exactly one output in its range, written f(x).</p><h3>Systems of Equations</h3><p>Systems can be solved by substitution, elimination, or matrix methods. Always check solutions by substituting back into the original equations.</p>",
			SortOrder:   1,
			Difficulty:  "easy",
		},
		{
			SubjectID:   mathematics.ID,
			Name:        "Geometry - Triangles",
			Description: "Properties and theorems related to triangles",
			Content:     "<h3>Classification</h3><p>By sides: equilateral, isosceles, scalene. By angles: acute, right, obtuse.</p><h3>Key Properties</h3><p>The interior angles of any triangle sum to 180°. The triangle inequality requires the sum of any two side lengths to exceed the third.</p><h3>The Pythagorean Theorem</h3><p>In a right triangle, a² + b² = c². Example: a = 3, b = 4 gives c = √25 = 5.</p><h3>Congruence and Similarity</h3><p>Congruence criteria: SSS, SAS, ASA, AAS. Similarity criteria: AAA, SAS, SSS with proportional sides.</p><h3>Area</h3><p>A = (1/2) × b × h, Heron's formula A = √(s(s-a)(s-b)(s-c)), or A = (1/2) × a × b × sin(C).</p>",
			SortOrder:   2,
			Difficulty:  "medium",
		},
		{
			SubjectID:   mathematics.ID,
			Name:        "Calculus - Limits and Derivatives",
			Description: "Introduction to calculus concepts",
			Content:     "<h3>Limits</h3><p>A limit describes the behavior of a function as its input approaches a value. Example: lim(x→2) (x² - 4)/(x - 2) is indeterminate by direct substitution, but factoring gives lim(x→2) (x + 2) = 4.</p><h3>Continuity</h3><p>f is continuous at a when f(a) is defined, the limit exists, and the two agree.</p><h3>Derivatives</h3><p>The derivative measures the instantaneous rate of change. Basic rules: (xⁿ)' = nxⁿ⁻¹, sum rule, product rule, and the chain rule. Example: f(x) = x² + 3x - 2 gives f'(x) = 2x + 3.</p>",
			SortOrder:   3,
			Difficulty:  "hard",
		},
		{
			SubjectID:   mathematics.ID,
			Name:        "Probability and Statistics",
			Description: "Fundamentals of probability theory and statistical analysis",
			Content:     "<h3>Introduction to Probability</h3><p>Probability measures how likely an event is, from 0 (impossible) to 1 (certain). For equally likely outcomes, P(A) = favorable outcomes / total outcomes.</p><p>Key rules: P(A ∪ B) = P(A) + P(B) - P(A ∩ B), and for independent events P(A ∩ B) = P(A) × P(B).</p><h3>Statistics</h3><p>Descriptive statistics summarize data through measures of central tendency (mean, median, mode) and spread (range, variance, standard deviation).</p>",
			SortOrder:   4,
			Difficulty:  "medium",
		},
		{
			SubjectID:   mathematics.ID,
			Name:        "Sequences and Series",
			Description: "Understanding and working with mathematical sequences and series",
			Content:     "<h3>Introduction to Sequences</h3><p>A sequence is an ordered list of numbers following a rule. In an arithmetic progression each term differs from the last by a common difference d: an = a1 + (n-1)d. In a geometric progression each term is the previous one times a common ratio r: an = a1 × r^(n-1).</p><h3>Series</h3><p>The sum of the first n terms of an arithmetic progression is Sn = n(a1 + an)/2. For a geometric progression, Sn = a1(1 - rⁿ)/(1 - r) when r ≠ 1, and an infinite geometric series converges to a1/(1 - r) when |r| < 1.</p>",
			SortOrder:   5,
			Difficulty:  "hard",
		},
		{
			SubjectID:   english.ID,
			Name:        "English Grammar - Tenses",
			Description: "Overview of English verb tenses and their usage",
			Content:     "<p>English has 12 major tenses, each expressing different aspects of time.</p><p>Present tenses include:</p><ul><li><b>Simple Present</b>: Used for habits, general truths (e.g., \"I study English.\")</li><li><b>Present Continuous</b>: Used for actions happening now (e.g., \"I am studying English.\")</li><li><b>Present Perfect</b>: Used for past actions with current relevance (e.g., \"I have studied English.\")</li><li><b>Present Perfect Continuous</b>: Used for ongoing actions that started in the past (e.g., \"I have been studying English.\")</li></ul><p>Similar patterns exist for past and future tenses.</p>",
			SortOrder:   1,
			Difficulty:  "medium",
		},
		{
			SubjectID:   english.ID,
			Name:        "Essay Writing Skills",
			Description: "Techniques for effective essay writing in English",
			Content:     "<p>A well-structured essay typically consists of three main parts:</p><ul><li><b>Introduction</b>: Presents the topic and thesis statement</li><li><b>Body Paragraphs</b>: Each paragraph develops one main idea with evidence</li><li><b>Conclusion</b>: Summarizes the main points and restates the thesis</li></ul><p>Key writing techniques include:</p><ul><li>Using topic sentences to begin paragraphs</li><li>Incorporating evidence and examples to support claims</li><li>Using transitions to connect ideas</li><li>Varying sentence structure for better flow</li></ul>",
			SortOrder:   2,
			Difficulty:  "hard",
		},
		{
			SubjectID:   english.ID,
			Name:        "Reading Comprehension Strategies",
			Description: "Techniques for understanding and analyzing English texts",
			Content:     "<p>Effective reading comprehension involves several strategies:</p><ul><li><b>Skimming</b>: Quickly reading to get the main idea</li><li><b>Scanning</b>: Looking for specific information</li><li><b>Predicting</b>: Using context clues to anticipate content</li><li><b>Questioning</b>: Asking questions about the text</li><li><b>Summarizing</b>: Identifying key points</li></ul><p>When analyzing literary texts, pay attention to:</p><ul><li>Plot development</li><li>Character motivation</li><li>Setting and its significance</li><li>Themes and messages</li><li>Literary devices like metaphor and symbolism</li></ul>",
			SortOrder:   3,
			Difficulty:  "medium",
		},
		{
			SubjectID:   biology.ID,
			Name:        "Cell Structure and Function",
			Description: "Study of cellular components and their roles",
			Content:     "<p>The cell is the basic structural and functional unit of all living organisms. There are two main types of cells:</p><ul><li><b>Prokaryotic cells</b>: Simpler, lack a nucleus (e.g., bacteria)</li><li><b>Eukaryotic cells</b>: More complex, have a nucleus (e.g., animal and plant cells)</li></ul><p>Key cell organelles and their functions include:</p><ul><li><b>Nucleus</b>: Contains genetic material and controls cellular activities</li><li><b>Mitochondria</b>: Produce energy through cellular respiration</li><li><b>Endoplasmic Reticulum</b>: Involved in protein synthesis and lipid metabolism</li><li><b>Golgi Apparatus</b>: Processes and packages proteins</li><li><b>Lysosomes</b>: Contain digestive enzymes for breaking down waste</li></ul>",
			SortOrder:   1,
			Difficulty:  "medium",
		},
		{
			SubjectID:   biology.ID,
			Name:        "Human Circulatory System",
			Description: "Overview of the heart, blood vessels, and blood circulation",
			Content:     "<p>The circulatory system is responsible for transporting nutrients, oxygen, carbon dioxide, and hormones throughout the body.</p><p>The main components include:</p><ul><li><b>Heart</b>: A four-chambered pump that propels blood</li><li><b>Blood vessels</b>: Arteries (carry blood away from the heart), veins (carry blood to the heart), and capillaries (exchange sites)</li><li><b>Blood</b>: Composed of plasma, red blood cells, white blood cells, and platelets</li></ul><p>Blood circulation follows two paths:</p><ul><li><b>Pulmonary circulation</b>: Blood flows between the heart and lungs for oxygenation</li><li><b>Systemic circulation</b>: Blood flows between the heart and the rest of the body</li></ul>",
			SortOrder:   2,
			Difficulty:  "hard",
		},
		{
			SubjectID:   biology.ID,
			Name:        "Genetics and Inheritance",
			Description: "Principles of genetic inheritance and DNA structure",
			Content:     "<p>Genetics is the study of genes, heredity, and genetic variation in living organisms.</p><p>Key concepts include:</p><ul><li><b>DNA Structure</b>: Double helix composed of nucleotides containing adenine, thymine, guanine, and cytosine</li><li><b>Genes</b>: Segments of DNA that code for specific proteins</li><li><b>Chromosomes</b>: Structures that contain DNA and proteins</li><li><b>Mendel's Laws</b>: Law of segregation and law of independent assortment</li></ul><p>Inheritance patterns include:</p><ul><li><b>Dominant/Recessive</b>: Some traits mask others when present</li><li><b>Codominance</b>: Both alleles are expressed simultaneously</li><li><b>Sex-linked</b>: Traits carried on sex chromosomes</li></ul>",
			SortOrder:   3,
			Difficulty:  "hard",
		},
	}
	for _, topic := range topics {
		if _, err := w.insertTopic(topic); err != nil {
			return err
		}
	}

	progressRecords := []models.UserProgress{
		{UserID: user.ID, SubjectID: romanian.ID, TopicsCompleted: 12, PercentComplete: 74, LastStudied: now.Add(-1 * day)},
		{UserID: user.ID, SubjectID: mathematics.ID, TopicsCompleted: 8, PercentComplete: 58, LastStudied: now.Add(-2 * day)},
		{UserID: user.ID, SubjectID: english.ID, TopicsCompleted: 14, PercentComplete: 89, LastStudied: now},
		{UserID: user.ID, SubjectID: biology.ID, TopicsCompleted: 6, PercentComplete: 35, LastStudied: now.Add(-5 * day)},
	}
	for _, p := range progressRecords {
		if _, err := w.insertProgress(p); err != nil {
			return err
		}
	}

	romanianQuiz, err := w.insertTest(models.Test{
		Name:        "Romanian Literature Quiz",
		SubjectID:   romanian.ID,
		Description: "Test your knowledge of Romanian literature classics",
		Questions: []models.TestQuestion{
			{
				Question:      "Who wrote the novel 'Ion'?",
				Options:       []string{"Liviu Rebreanu", "Mihail Sadoveanu", "Camil Petrescu", "George Călinescu"},
				CorrectAnswer: 0,
				Explanation:   "Liviu Rebreanu wrote 'Ion' in 1920, a novel that depicts rural life in Transylvania.",
			},
			{
				Question:      "Which of the following is NOT a work by Mihai Eminescu?",
				Options:       []string{"Luceafărul", "Floare Albastră", "Plumb", "Scrisoarea I"},
				CorrectAnswer: 2,
				Explanation:   "'Plumb' was written by George Bacovia, not Mihai Eminescu.",
			},
		},
		TimeLimit:  20,
		Difficulty: "medium",
	})
	if err != nil {
		return err
	}
	mathExam, err := w.insertTest(models.Test{
		Name:        "Mathematics Practice Exam",
		SubjectID:   mathematics.ID,
		Description: "Comprehensive practice exam covering algebra and geometry",
		Questions: []models.TestQuestion{
			{
				Question:      "Solve for x: 2x + 5 = 13",
				Options:       []string{"x = 3", "x = 4", "x = 5", "x = 6"},
				CorrectAnswer: 1,
				Explanation:   "2x + 5 = 13, 2x = 8, x = 4",
			},
			{
				Question:      "What is the formula for the area of a circle?",
				Options:       []string{"A = πr²", "A = 2πr", "A = πd", "A = 4πr²"},
				CorrectAnswer: 0,
				Explanation:   "The area of a circle is π multiplied by the square of the radius (πr²).",
			},
		},
		TimeLimit:  60,
		Difficulty: "hard",
	})
	if err != nil {
		return err
	}
	grammarTest, err := w.insertTest(models.Test{
		Name:        "English Grammar Test",
		SubjectID:   english.ID,
		Description: "Test your knowledge of English grammar rules",
		Questions: []models.TestQuestion{
			{
				Question:      "Which sentence uses the correct form of the verb?",
				Options:       []string{"She don't know the answer.", "She doesn't knows the answer.", "She doesn't know the answer.", "She not know the answer."},
				CorrectAnswer: 2,
				Explanation:   "For third-person singular in present simple negative, we use 'doesn't' + base form of the verb.",
			},
			{
				Question:      "Choose the correct preposition: 'I'm afraid ___ spiders.'",
				Options:       []string{"from", "of", "about", "for"},
				CorrectAnswer: 1,
				Explanation:   "The correct phrase is 'afraid of' something.",
			},
		},
		TimeLimit:  30,
		Difficulty: "easy",
	})
	if err != nil {
		return err
	}

	results := []models.UserTestResult{
		{
			UserID: user.ID, TestID: romanianQuiz.ID, Score: 17, PercentCorrect: 85,
			Answers: []models.AnswerRecord{
				{QuestionIndex: 0, SelectedOption: 0, Correct: true},
				{QuestionIndex: 1, SelectedOption: 2, Correct: true},
			},
		},
		{
			UserID: user.ID, TestID: mathExam.ID, Score: 68, PercentCorrect: 68,
			Answers: []models.AnswerRecord{
				{QuestionIndex: 0, SelectedOption: 1, Correct: true},
				{QuestionIndex: 1, SelectedOption: 2, Correct: false},
			},
		},
		{
			UserID: user.ID, TestID: grammarTest.ID, Score: 92, PercentCorrect: 92,
			Answers: []models.AnswerRecord{
				{QuestionIndex: 0, SelectedOption: 2, Correct: true},
				{QuestionIndex: 1, SelectedOption: 1, Correct: true},
			},
		},
	}
	for i, r := range results {
		r.CompletedAt = now.Add(-time.Duration(i+1) * 2 * day)
		if _, err := w.insertTestResult(r); err != nil {
			return err
		}
	}

	badgeDefs := []models.Badge{
		{Name: "Math Wizard", Description: "Achieved 90% or higher on 3 math quizzes", Icon: "ri-medal-line", Criteria: "math_quiz_90"},
		{Name: "Literature Pro", Description: "Completed all literature topics", Icon: "ri-book-mark-line", Criteria: "literature_complete"},
		{Name: "Speed Demon", Description: "Completed a test in half the allotted time", Icon: "ri-timer-line", Criteria: "fast_test"},
	}
	for i, b := range badgeDefs {
		badge, err := w.insertBadge(b)
		if err != nil {
			return err
		}
		_, err = w.insertUserBadge(models.UserBadge{
			UserID:   user.ID,
			BadgeID:  badge.ID,
			EarnedAt: now.Add(-time.Duration(i+1) * 5 * day),
		})
		if err != nil {
			return err
		}
	}

	// Three study sessions earlier in the week, each longer than the last.
	for i := 0; i < 3; i++ {
		_, err := w.insertStreak(models.StudyStreak{
			UserID:         user.ID,
			Date:           now.Add(-time.Duration(6-i) * day),
			MinutesStudied: 45 + i*15,
		})
		if err != nil {
			return err
		}
	}

	tomorrow := now.Add(day)
	tasks := []models.StudyPlanTask{
		{
			UserID:      user.ID,
			Title:       "Complete Mathematics lesson on Geometric Progressions",
			Description: "25 min - Continue from where you left off",
			Duration:    25,
			Priority:    true,
			DueDate:     tomorrow,
		},
		{
			UserID:      user.ID,
			Title:       "Practice Romanian Literary Analysis exercise",
			Description: "40 min - Focus on character development in \"Ion\"",
			Duration:    40,
			DueDate:     tomorrow,
		},
		{
			UserID:      user.ID,
			Title:       "Review English vocabulary flashcards",
			Description: "15 min - Focus on academic vocabulary",
			Duration:    15,
			DueDate:     tomorrow,
		},
		{
			UserID:      user.ID,
			Title:       "Try a short Biology quiz on Cell Structure",
			Description: "20 min - This is your weakest topic",
			Duration:    20,
			Recommended: true,
			DueDate:     tomorrow,
		},
	}
	for _, task := range tasks {
		if _, err := w.insertPlanTask(task); err != nil {
			return err
		}
	}

	_, err = w.insertChatHistory(models.AiChatHistory{
		UserID: user.ID,
		Messages: []models.ChatMessage{
			{Content: "Hello! I'm your AI learning assistant. How can I help with your Bacalaureat preparation today?", IsUser: false},
			{Content: "Can you explain the formula for geometric progressions?", IsUser: true},
			{Content: "In a geometric progression with first term a and common ratio r, the nth term is given by: an = a1 × r^(n-1)\n\nThe sum of the first n terms is:\nSn = a1 × (1 - r^n) / (1 - r) when r ≠ 1\n\nWould you like to see an example or practice problems?", IsUser: false},
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}
