package knowledge

// snippets is the topic-key to background-text table the prompt composer
// draws from. Project entries are written long; the composer truncates them
// to a fixed prefix before appending, so cut-off mid-sentence is expected.
var snippets = map[string]string{
	"commercialAnalyticsHub": "The Commercial Analytics Hub is a B2B dashboard product Alex designed and partly " +
		"built over two years at a retail intelligence company. It serves category managers who need to " +
		"compare sell-through, pricing, and promotion performance across hundreds of stores. Alex joined " +
		"when the product was a grid of forty unlabeled charts and reworked it around three core questions " +
		"the managers actually asked: what changed, why, and what should I do about it. The redesign " +
		"introduced a layered navigation model (portfolio, category, SKU), a shared filter bar that " +
		"persists across views, and an annotation layer so analysts could mark promotions directly on the " +
		"trend lines. Alex also wrote the React implementation of the charting layer, including a " +
		"virtualized table that handles fifty thousand rows without pagination. Adoption tripled in the " +
		"first quarter after launch, and the annotation feature became the most-used one in the product.",

	"supplyChainSuite": "The Supply Chain Suite is a set of three internal planning tools Alex designed for a " +
		"logistics operator: inbound scheduling, warehouse capacity, and carrier performance. The users " +
		"are dispatchers working under time pressure, often on aging hardware in noisy environments, so " +
		"the design brief was effectively 'make it legible from two meters away'. Alex ran a two-week " +
		"diary study with eleven dispatchers before drawing anything, which surfaced that most errors " +
		"came from retyping reference numbers between systems. The shipped design centers on a single " +
		"shipment timeline with drag-to-reschedule, barcode-first data entry, and status colors tested " +
		"for the warehouse lighting conditions. Error rates on inbound bookings dropped by about forty " +
		"percent, and the timeline view was later adopted by two other internal teams as a pattern.",

	"designSystem": "Alex built the company design system at the retail intelligence company from zero to " +
		"roughly sixty components, used by four product teams. It started as a Figma library of audited " +
		"existing screens, then grew a coded counterpart in React with tokens for color, spacing, and " +
		"typography shared between Figma and code through a small sync script Alex wrote. The governance " +
		"model is deliberately lightweight: any designer can propose a component, but it only graduates " +
		"into the system after appearing in two shipped features. Alex ran the fortnightly crit where " +
		"proposals were reviewed, wrote the documentation site, and personally migrated the two oldest " +
		"products onto the tokens. The measurable win was consistency debt: duplicated button styles " +
		"went from thirty-one variants to four, and new feature mockups started reusing system " +
		"components about eighty percent of the time.",

	"huggiesWebsite": "The Huggies website redesign was an agency engagement where Alex was the lead designer " +
		"for the product-range and article sections of the consumer site. The brief was to move a " +
		"catalogue-style site toward a content destination for new parents without losing the conversion " +
		"path to retailers. Alex restructured the range pages around the child's age and stage rather " +
		"than the product codes the business used internally, which testing with fourteen parents showed " +
		"cut time-to-find roughly in half. The article hub got a calmer reading layout, larger typography " +
		"tested on mobile devices one-handed (most visitors are holding a baby), and a persistent but " +
		"quiet 'where to buy' module. Alex delivered a full responsive spec and a component inventory " +
		"that the client's internal team still uses, and the stage-based navigation pattern was rolled " +
		"out to three other markets within a year.",

	"realEstatePlatform": "Alex's freelance real estate work was a listings platform for a regional agency: " +
		"design and front-end build of the search experience, agent profiles, and a valuation lead form. " +
		"Working solo end-to-end, Alex handled everything from the information architecture workshop with " +
		"the agency owners through the TypeScript implementation and analytics setup. The map-plus-list " +
		"search with saved filters became the agency's main lead source within six months, and the " +
		"valuation form converts at around nine percent. It remains the project Alex points to when " +
		"asked what working with a freelance client looks like, because the scope, budget, and success " +
		"metric were all agreed on one page before any design started.",

	"designPhilosophy": "Alex's design philosophy is that interfaces should explain themselves: every screen " +
		"should make clear what it shows, what just changed, and what the user can do next, without a " +
		"tour or a manual. In practice that means designing empty states and error states first, writing " +
		"real interface copy instead of lorem ipsum, and prototyping in code whenever motion or data " +
		"density is the point. Alex is skeptical of dashboards that celebrate how much data they show " +
		"and prefers starting from the three questions a user actually brings to the screen.",

	"developerWorkflow": "Alex's development workflow starts in Figma for structure but moves to code early: " +
		"TypeScript and React for product work, Go for small backend services like the one powering this " +
		"assistant. Alex keeps a personal component playground where interaction ideas are tested with " +
		"real data before they appear in any mockup, reviews own pull requests the next morning before " +
		"asking others to, and treats accessibility checks as part of done, not a later pass.",

	"researchProcess": "Alex's research process favors small, frequent, and unglamorous studies over big " +
		"reports: weekly half-hour usability sessions with whoever the product actually serves, diary " +
		"studies when context matters more than opinion, and a strict same-day rule that every session " +
		"ends with findings sorted into fix-now, fix-next, and rethink. Alex writes discussion guides " +
		"but holds them loosely, and records a one-minute highlight clip per session because teams " +
		"watch clips and skim documents.",

	"projectManagement": "On project management, Alex works in weekly cycles with a visible plan: each cycle " +
		"has one primary outcome, design and engineering sit in the same standup, and scope gets cut " +
		"before quality does. Alex writes short decision logs instead of long specs, on the theory that " +
		"six months later people ask why, not what. Estimates are given as ranges and revisited " +
		"mid-cycle rather than defended.",

	"careerGoals": "Alex's career goal is to keep working at the seam between design and engineering, " +
		"ideally leading a small product team where designers ship code and engineers sit in research " +
		"sessions. Near-term, Alex wants to go deeper on applied AI in interfaces, things like this " +
		"assistant, and is open to senior product designer or design engineer roles at product-led " +
		"companies, as well as select freelance engagements.",
}
