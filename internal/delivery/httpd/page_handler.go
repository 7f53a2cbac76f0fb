package httpd

import (
	"html/template"
	"net/http"

	"github.com/dictchannels/portal/internal/models"
)

// StaticPageInfo drives the informational pages that render fixed copy
// through a shared template.
type StaticPageInfo struct {
	Template string
	Title    string
	Heading  string
	Lead     string
	// Service is the exact catalog choice the inquiry form posts.
	Service string
	Body    template.HTML
}

var staticPages = map[string]StaticPageInfo{
	"/about": {
		Template: "about",
		Title:    "About Us",
	},
	"/software-development": {
		Template: "service_detail",
		Title:    "Software Development",
		Heading:  "Software Development Service",
		Lead:     "Custom web and mobile applications built for your business.",
		Service:  "SOFTWARE DEVELOPMENT SERVICE",
	},
	"/it-training": {
		Template: "service_detail",
		Title:    "IT Education",
		Heading:  "Professional Computer and IT Education",
		Lead:     "Hands-on training programmes from beginner to professional level.",
		Service:  "PROFESSIONAL COMPUTER AND IT EDUCATION",
	},
	"/digital-advertising": {
		Template: "service_detail",
		Title:    "Digital Advertising",
		Heading:  "Digital Advertising and Business Branding",
		Lead:     "Grow your audience with campaigns that convert.",
		Service:  "DIGITAL ADVERTISING AND BUSINESS BRANDING",
	},
	"/university-admission": {
		Template: "service_detail",
		Title:    "University Admission",
		Heading:  "International University Admission Processing",
		Lead:     "Your Gateway to Global Education",
		Service:  "INTERNATIONAL UNIVERSITY ADMISSION PROCESSING",
		Body: `<p>We help students secure admission from different countries to apply for and enroll in higher education abroad, including America, Canada, UK, and more.</p>
<div class="row g-4">
<div class="col-lg-6"><div class="bg-light p-4 rounded"><h5>University Applications</h5><p>Complete application assistance for top universities worldwide.</p></div></div>
<div class="col-lg-6"><div class="bg-light p-4 rounded"><h5>Visa Processing</h5><p>Guidance and support for student visa applications.</p></div></div>
</div>
<div class="mt-4"><h5>Countries We Support:</h5><ul><li>United States of America</li><li>United Kingdom</li><li>Canada</li><li>Australia</li><li>Germany</li></ul></div>`,
	},
	"/seo": {
		Template: "service_detail",
		Title:    "SEO Optimization",
		Heading:  "Website SEO Optimization",
		Lead:     "Get found by the customers searching for you.",
		Service:  "WEBSITE SEO Optimization",
	},
	"/bank": {
		Template: "info",
		Title:    "Bank Account Details",
		Lead:     "Payment Information",
		Body: `<p>For your convenience, here are our bank account details for course payments and other transactions.</p>
<div class="row g-4">
<div class="col-lg-6"><div class="bg-light p-4 rounded"><h5>Bank Name: Access Bank PLC</h5><p><strong>Account Name:</strong> D-ICT CHANNELS</p><p><strong>Account Number:</strong> 1234567890</p><p><strong>Account Type:</strong> Current Account</p></div></div>
<div class="col-lg-6"><div class="bg-light p-4 rounded"><h5>Bank Name: Zenith Bank PLC</h5><p><strong>Account Name:</strong> D-ICT CHANNELS</p><p><strong>Account Number:</strong> 0987654321</p><p><strong>Account Type:</strong> Current Account</p></div></div>
</div>
<div class="mt-4"><p><strong>Note:</strong> Please include your full name and course name in the payment description for easy identification.</p></div>`,
	},
	"/branches": {
		Template: "info",
		Title:    "Our Branches",
		Lead:     "Locations Across Nigeria",
		Body: `<p>D-ICT CHANNELS has multiple training centers across Nigeria to serve you better.</p>
<div class="row g-4">
<div class="col-lg-6"><div class="bg-light p-4 rounded"><h5>Lagos Branch (Head Office)</h5><p>2, Martins Street Off Ojuelegba Road, Yaba, Lagos State</p><p><strong>Phone:</strong> +234 8032867212, +234 8082171242</p><p><strong>Email:</strong> info@d-ictchannels.com</p></div></div>
<div class="col-lg-6"><div class="bg-light p-4 rounded"><h5>Abuja Branch</h5><p>Suite 123, Wuse 2, Abuja, FCT</p><p><strong>Phone:</strong> +234 8032867213</p><p><strong>Email:</strong> abuja@d-ictchannels.com</p></div></div>
</div>`,
	},
	"/career": {
		Template: "info",
		Title:    "Career Opportunities",
		Lead:     "Join Our Team",
		Body: `<p>We're always looking for talented individuals to join our growing team. If you're passionate about technology education and software development, we want to hear from you!</p>
<div class="row g-4">
<div class="col-lg-6"><div class="bg-light p-4 rounded"><h5>Senior Instructor</h5><p>Requirements: 3+ years teaching experience, expertise in Python/Java/C#</p><p><strong>Location:</strong> Lagos, Nigeria</p><p><strong>Type:</strong> Full-time</p></div></div>
<div class="col-lg-6"><div class="bg-light p-4 rounded"><h5>Software Developer</h5><p>Requirements: 2+ years development experience, React/Django knowledge</p><p><strong>Location:</strong> Lagos, Nigeria</p><p><strong>Type:</strong> Full-time</p></div></div>
</div>
<div class="mt-4"><p><strong>To apply:</strong> Send your CV and cover letter to careers@dictchannels.com</p></div>`,
	},
	"/faq": {
		Template: "info",
		Title:    "Frequently Asked Questions",
		Lead:     "Your Questions Answered",
		Body: `<div class="accordion" id="faqAccordion">
<div class="accordion-item">
<h2 class="accordion-header" id="heading1"><button class="accordion-button" type="button" data-bs-toggle="collapse" data-bs-target="#collapse1" aria-expanded="true" aria-controls="collapse1">What courses do you offer?</button></h2>
<div id="collapse1" class="accordion-collapse collapse show" aria-labelledby="heading1" data-bs-parent="#faqAccordion"><div class="accordion-body">We offer a wide range of IT courses including Python, Java, C#, Web Development, Data Science, Cybersecurity, and many more.</div></div>
</div>
<div class="accordion-item">
<h2 class="accordion-header" id="heading2"><button class="accordion-button collapsed" type="button" data-bs-toggle="collapse" data-bs-target="#collapse2" aria-expanded="false" aria-controls="collapse2">Do you offer online classes?</button></h2>
<div id="collapse2" class="accordion-collapse collapse" aria-labelledby="heading2" data-bs-parent="#faqAccordion"><div class="accordion-body">Yes, we offer both online and in-person training options to suit your schedule and learning preferences.</div></div>
</div>
<div class="accordion-item">
<h2 class="accordion-header" id="heading3"><button class="accordion-button collapsed" type="button" data-bs-toggle="collapse" data-bs-target="#collapse3" aria-expanded="false" aria-controls="collapse3">What are your payment options?</button></h2>
<div id="collapse3" class="accordion-collapse collapse" aria-labelledby="heading3" data-bs-parent="#faqAccordion"><div class="accordion-body">We accept bank transfers, online payments, and installment plans. Contact us for detailed payment information.</div></div>
</div>
</div>`,
	},
	"/topup": {
		Template: "info",
		Title:    "Top Up Programs",
		Lead:     "Advance Your Education",
		Body:     `<p>The Top Up program is a 2-year program with 4 semesters that leads to a BSc Degree. Perfect for students looking to advance their education and career prospects.</p><p><strong>Duration:</strong> 2 years (4 semesters)<br><strong>Degree:</strong> BSc in Computer Science/IT<br><strong>Mode:</strong> Full-time/Part-time available</p>`,
	},
	"/diploma": {
		Template: "info",
		Title:    "Diploma Programs",
		Lead:     "6 Months Intensive Training",
		Body:     `<p>The Diploma program is a 6-month intensive course that enables students to specialize in any IT skills field. Comprehensive training with hands-on projects.</p><p><strong>Duration:</strong> 6 months<br><strong>Focus:</strong> Specialized IT skills<br><strong>Projects:</strong> Real-world applications</p>`,
	},
	"/certificate": {
		Template: "info",
		Title:    "Certificate Programs",
		Lead:     "1-4 Months Skill Development",
		Body:     `<p>The Certificate program ranges from 1 to 4 months duration for students wanting to have skills in the IT field. Flexible durations to match your learning pace.</p><p><strong>Duration:</strong> 1-4 months<br><strong>Skills:</strong> Core IT competencies<br><strong>Certification:</strong> Industry-recognized certificates</p>`,
	},
	"/school": {
		Template: "info",
		Title:    "Tech 4 Schools Programs",
		Lead:     "IT Education for Young Minds",
		Body:     `<p>The Tech 4 Schools program is designed for students in grades 1-12 to enable them to have IT skills. Age-appropriate curriculum for young learners.</p><p><strong>Age Group:</strong> Grades 1-12<br><strong>Focus:</strong> Basic to advanced computing skills<br><strong>Methodology:</strong> Interactive and fun learning</p>`,
	},
	"/siwes": {
		Template: "info",
		Title:    "SIWES Programs",
		Lead:     "Industrial Training for Students",
		Body:     `<p>The SIWES program is for students at higher institutions to give them professional IT skills. Mandatory industrial training with practical exposure.</p><p><strong>Target:</strong> Higher institution students<br><strong>Duration:</strong> 6 months<br><strong>Focus:</strong> Professional IT skills development</p>`,
	},
	"/internship": {
		Template: "info",
		Title:    "Internship Programs",
		Lead:     "Learn and Work Experience",
		Body:     `<p>The Internship program is for students who want to learn and also have working experience in an IT firm. Combines learning with practical work experience.</p><p><strong>Duration:</strong> 3-6 months<br><strong>Experience:</strong> Real workplace exposure<br><strong>Skills:</strong> Professional development</p>`,
	},
	"/corporate": {
		Template: "info",
		Title:    "Corporate Programs",
		Lead:     "Training for Organizations",
		Body:     `<p>The Corporate program is for organizations that want to train their staff in professional IT skills. Customized training solutions for businesses.</p><p><strong>Target:</strong> Corporate organizations<br><strong>Customization:</strong> Tailored to company needs<br><strong>Delivery:</strong> On-site or online</p>`,
	},
	"/customized": {
		Template: "info",
		Title:    "Customized Programs",
		Lead:     "Bespoke Training Solutions",
		Body:     `<p>The Customized program is for students who want to bring their course outline in IT to be taught. Fully customizable curriculum based on your requirements.</p><p><strong>Flexibility:</strong> Custom course outlines<br><strong>Content:</strong> Client-specified topics<br><strong>Delivery:</strong> As per client preference</p>`,
	},
	"/mode": {
		Template: "info",
		Title:    "Mode of Training",
		Lead:     "Flexible Learning Options",
		Body: `<p>We offer various modes of training to suit different learning preferences and schedules. Choose the option that works best for you.</p>
<div class="row g-4">
<div class="col-lg-4"><div class="bg-light p-4 rounded text-center"><i class="fas fa-building fa-3x text-primary mb-3"></i><h5>Classroom Training</h5><p>Traditional classroom learning with instructors.</p></div></div>
<div class="col-lg-4"><div class="bg-light p-4 rounded text-center"><i class="fas fa-laptop fa-3x text-primary mb-3"></i><h5>Online Training</h5><p>Virtual learning from anywhere, anytime.</p></div></div>
<div class="col-lg-4"><div class="bg-light p-4 rounded text-center"><i class="fas fa-blender-phone fa-3x text-primary mb-3"></i><h5>Hybrid Training</h5><p>Combination of online and classroom learning.</p></div></div>
</div>`,
	},
	"/fast": {
		Template: "info",
		Title:    "Fast Track Programs",
		Lead:     "Accelerated Learning Paths",
		Body:     `<p>Fast-track programs are accelerated learning paths designed to help individuals gain specific skills or qualifications in a shorter time frame.</p><p><strong>Duration:</strong> 2-8 weeks intensive<br><strong>Focus:</strong> Specific skill sets<br><strong>Intensity:</strong> Full-time training</p>`,
	},
	"/seminar": {
		Template: "info",
		Title:    "Monthly Seminar",
		Lead:     "Knowledge Sharing Sessions",
		Body:     `<p>Our Monthly Seminar is designed to provide valuable insights, knowledge, and networking opportunities for professionals and students alike.</p><p><strong>Frequency:</strong> Monthly<br><strong>Topics:</strong> Current IT trends and technologies<br><strong>Format:</strong> Interactive sessions</p>`,
	},
	"/workshop": {
		Template: "info",
		Title:    "Monthly Workshop",
		Lead:     "Hands-on Learning Experience",
		Body:     `<p>Our Monthly Workshop offers hands-on, practical training sessions designed to help you develop new skills and gain practical experience.</p><p><strong>Frequency:</strong> Monthly<br><strong>Activities:</strong> Practical exercises and projects<br><strong>Duration:</strong> Full-day sessions</p>`,
	},
	"/scholarship": {
		Template: "info",
		Title:    "Quarterly Scholarship",
		Lead:     "Financial Support for Education",
		Body:     `<p>Our Quarterly Scholarship program is designed to support and empower students by providing financial assistance for their education.</p><p><strong>Frequency:</strong> Quarterly<br><strong>Benefits:</strong> Fee discounts and waivers<br><strong>Eligibility:</strong> Based on merit and need</p>`,
	},
	"/exams": {
		Template: "info",
		Title:    "Certification Exams",
		Lead:     "Validate Your Skills",
		Body:     `<p>We prepare students for various industry-recognized certification exams to validate their skills and enhance career prospects.</p><p><strong>Certifications:</strong> CompTIA, Cisco, Microsoft, Oracle<br><strong>Preparation:</strong> Comprehensive training and practice<br><strong>Success Rate:</strong> High pass rates</p>`,
	},
	"/blogs": {
		Template: "info",
		Title:    "Latest Blog",
		Lead:     "Insights and Updates",
		Body:     `<p>Check out our Latest Blog for fresh insights, expert tips, and in-depth discussions on the topics that matter most in technology and education.</p><p><strong>Topics:</strong> Technology trends, career advice, industry news<br><strong>Authors:</strong> Industry experts and instructors<br><strong>Updates:</strong> Regular posts and articles</p>`,
	},
}

// StaticPage returns a handler rendering fixed copy; there is no error
// path here beyond an unknown template.
func (h *Handler) StaticPage(page StaticPageInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, page.Template, page.Title, page)
	}
}

type homeData struct {
	Services     []models.Service
	Courses      []models.Course
	Testimonials []models.Testimonial
}

func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services, err := h.catalogService.Services(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	courses, err := h.catalogService.Courses(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	testimonials, err := h.catalogService.Testimonials(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "home", "Home", homeData{
		Services:     services,
		Courses:      courses,
		Testimonials: testimonials,
	})
}

func (h *Handler) ServicesPage(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.Services(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "services", "Our Services", services)
}

func (h *Handler) CoursesPage(w http.ResponseWriter, r *http.Request) {
	courses, err := h.catalogService.Courses(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "courses", "Our Courses", courses)
}

func (h *Handler) EventsPage(w http.ResponseWriter, r *http.Request) {
	events, err := h.catalogService.Events(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "events", "Events", events)
}

func (h *Handler) TeamPage(w http.ResponseWriter, r *http.Request) {
	members, err := h.catalogService.TeamMembers(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "team", "Our Team", members)
}

func (h *Handler) TestimonialPage(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.catalogService.Testimonials(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "testimonial", "Testimonials", testimonials)
}

func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contact", "Contact Us", nil)
}

func (h *Handler) QuotePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "quote", "Request a Quote", models.ServiceChoices)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	http.Error(w, "something went wrong", http.StatusInternalServerError)
}
