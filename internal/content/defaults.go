package content

const testimonialImage = "https://i.imgur.com/ClGEiTN.jpeg"

// Default returns the built-in copy of the page. Every call returns a fresh value.
func Default() *Page {
	return &Page{
		Title:       "Domine um novo método em 21 dias",
		Description: "Conquiste seus objetivos com um passo a passo desenhado para a sua realidade.",
		Hero: Hero{
			Brand:             "LOGO DA SUA MARCA",
			Headline:          "Domine um novo método e transforme sua vida em",
			HeadlineHighlight: "apenas 21 dias",
			Prompt:            "Assista ao vídeo e descubra como começar sua jornada hoje",
			VideoPlaceholder:  "Inserir seu Vídeo de Vendas aqui (YouTube/Vimeo/Vsl)",
			CTA:               "QUERO COMEÇAR MINHA TRANSFORMAÇÃO",
			SocialProof:       "Junte-se a centenas de pessoas que já alcançaram resultados extraordinários com este método.",
		},
		Benefits: Benefits{
			Title: "Titulo com beneficios",
			Intro: `Conquiste seus objetivos com um <span class="background-destaque font-bold">passo a passo</span> desenhado para a sua realidade.`,
			Items: []Item{
				{Title: "Benefício Transformador 1", Description: "Descrição clara de como esse benefício impacta positivamente a vida do aluno."},
				{Title: "Benefício Transformador 2", Description: "Descrição clara de como esse benefício impacta positivamente a vida do aluno."},
				{Title: "Benefício Transformador 3", Description: "Descrição clara de como esse benefício impacta positivamente a vida do aluno."},
				{Title: "Benefício Transformador 4", Description: "Descrição clara de como esse benefício impacta positivamente a vida do aluno."},
			},
		},
		Carousel: Carousel{
			Heading: Heading{Text: "Histórias reais de", Highlight: "quem já chegou lá:"},
			Images:  []string{testimonialImage, testimonialImage, testimonialImage, testimonialImage, testimonialImage},
			Caption: "Resultado Comprovado",
			CTA:     "QUERO TER RESULTADOS COMO ESSES",
		},
		Ticker: Ticker{
			Text:   "NOME DO SEU DESAFIO ◉",
			Repeat: 20,
		},
		Steps: Steps{
			Heading: Heading{Text: "Como funciona", Highlight: "na prática"},
			Items: []Step{
				{Icon: "play", Title: "Acesso Imediato", Description: "Faça sua inscrição e receba instantaneamente o acesso à plataforma de aulas no seu e-mail."},
				{Icon: "trending-up", Title: "Estude e Aplique", Description: "Assista às aulas em alta definição e coloque o método em prática com exercícios diários."},
				{Icon: "award", Title: "Conquiste Resultados", Description: "Domine a técnica em 21 dias, encante seus clientes e receba seu certificado de conclusão."},
			},
			CTA: "QUERO GARANTIR MINHA VAGA",
		},
		Features: Features{
			Heading: Heading{Text: "O que você vai encontrar no", Highlight: "Programa?"},
			Items: []Item{
				{Title: "Metodologia Validada", Description: "Acesso a um passo a passo testado e aprovado para gerar resultados rápidos."},
				{Title: "Aulas em Alta Definição", Description: "Conteúdo gravado com qualidade premium para você assistir quando e onde quiser."},
				{Title: "Materiais de Apoio", Description: "Planilhas, PDFs e checklists exclusivos para facilitar sua execução."},
				{Title: "Comunidade Exclusiva", Description: "Ambiente para networking e troca de experiências com outros alunos."},
				{Title: "Suporte Especializado", Description: "Canal direto para tirar suas dúvidas e garantir que você não pare no caminho."},
				{Title: "Módulos de Bônus", Description: "Conteúdos extras estrategicamente selecionados para acelerar seus ganhos."},
			},
		},
		Mentor: Mentor{
			Title: "Quem é seu mentor?",
			Paragraphs: []Rich{
				"Aqui você insere uma breve descrição sobre o <strong>Especialista do Produto</strong>.",
				"Fale sobre sua experiência, autoridade no mercado e o porquê você decidiu criar este programa.",
				"Destaque os principais marcos da sua carreira e como você já transformou a vida de diversas pessoas através do seu conhecimento.",
			},
			PhotoURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&q=80&w=1000",
			PhotoAlt: "Especialista",
		},
		Pricing: Pricing{
			Headline:     "OPORTUNIDADE ÚNICA!",
			Subheadline:  "Garanta sua vaga com condições especiais de lançamento.",
			Plan:         "ACESSO COMPLETO",
			Original:     Price{Cents: 49700},
			Offer:        Price{Cents: 19700},
			OfferLead:    "Por apenas",
			Installments: "Ou parcelado em seu cartão",
			Payment:      "Pagamento Seguro via Hotmart/Eduzz/Kiwi",
			Access:       "Acesso vitalício ou por tempo determinado",
			Secure:       "Compra 100% Segura",
			CTA:          "GARANTIR MINHA VAGA AGORA",
		},
		Guarantee: Guarantee{
			Heading: Heading{Text: "Risco Zero:", Highlight: "Garantia Total"},
			Body:    "Eu confio tanto no que estou te entregando que tiro todo o peso da sua decisão. Você tem 7 dias para acessar tudo e, se não gostar, devolvo cada centavo.",
			Closing: "Compromisso com o seu sucesso.",
			Seal:    Seal{Days: 7, Unit: "Dias", Label: "Garantia Total"},
		},
		FAQ: FAQ{
			Heading: Heading{Text: "Dúvidas", Highlight: "Frequentes"},
			Items: []QA{
				{Question: "1. Preciso de algum conhecimento prévio?", Answer: "Não. O método é ensinado do absoluto zero, de forma simples e didática para qualquer pessoa conseguir aplicar."},
				{Question: "2. Como receberei o acesso ao conteúdo?", Answer: "Imediatamente após a confirmação do pagamento, você receberá os dados de acesso por e-mail."},
				{Question: "3. Por quanto tempo terei acesso ao programa?", Answer: "Isso depende da oferta selecionada, mas geralmente oferecemos acesso por 1 ano ou acesso vitalício."},
				{Question: "4. Existe suporte para dúvidas durante o curso?", Answer: "Sim! Temos uma equipe de suporte e uma área de membros onde você pode deixar suas perguntas abaixo de cada aula."},
				{Question: "5. E se eu não gostar ou não me adaptar?", Answer: "Você tem uma garantia incondicional de 7 dias para testar todo o conteúdo sem riscos."},
			},
		},
		Footer: Footer{
			Company: "Nome da Sua Empresa ou Marca Profissional",
			TaxID:   "CNPJ: 00.000.000/0001-00",
			Links: []Link{
				{Label: "Política de Privacidade", URL: "#"},
				{Label: "Termos de Uso", URL: "#"},
			},
		},
	}
}
